// Package sender synthesizes keyboard input at the operating-system
// level. Each platform implements the emission mechanism in separate
// files guarded by build tags; the Sender wrapper owns the logic that is
// the same everywhere: modifier tracking, taps, combos and pacing.
package sender

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"typrio/keys"
)

// BackendType identifies the platform mechanism behind a Sender. It is
// fixed for the lifetime of the instance.
type BackendType uint8

const (
	Unavailable BackendType = iota
	LinuxUInput
	LinuxX11
	MacCGEvent
	WindowsSendInput
)

func (t BackendType) String() string {
	switch t {
	case LinuxUInput:
		return "LinuxUInput"
	case LinuxX11:
		return "LinuxX11"
	case MacCGEvent:
		return "MacCGEvent"
	case WindowsSendInput:
		return "WindowsSendInput"
	}
	return "Unavailable"
}

// Capabilities is an immutable snapshot of what a Sender instance can do
// and which OS permissions it still needs. Field order matches the
// foreign ABI struct.
type Capabilities struct {
	CanInjectKeys            bool
	CanInjectText            bool
	CanSimulateHID           bool
	SupportsKeyRepeat        bool
	NeedsAccessibilityPerm   bool
	NeedsInputMonitoringPerm bool
	NeedsUinputAccess        bool
}

var (
	// ErrNotReady reports that the backend never acquired its OS handle.
	ErrNotReady = errors.New("sender backend not ready")
	// ErrUnmappedKey reports a key with no native translation for the
	// active backend.
	ErrUnmappedKey = errors.New("no native key code mapping")
	// ErrTextUnsupported reports that the backend cannot inject Unicode
	// text (virtual-HID backends emit physical key codes only).
	ErrTextUnsupported = errors.New("text injection not supported by backend")
)

// backend is the platform-specific half of a Sender. Exactly one
// implementation is compiled in per target.
type backend interface {
	ready() bool
	backendType() BackendType
	capabilities() Capabilities
	requestPermissions() bool
	sendKey(k keys.Key, down bool) error
	typeText(text string) error
	typeCharacter(cp rune) error
	flush()
	close()
}

// Sender injects synthetic keyboard input through a platform backend and
// tracks the modifier state it has itself asserted. A Sender is not safe
// for concurrent use; drive it from a single owner goroutine.
type Sender struct {
	b        backend
	mods     keys.Modifier
	keyDelay time.Duration
}

const defaultKeyDelay = 1000 * time.Microsecond

// New constructs a Sender for the host OS. Construction never fails:
// if the OS handle could not be acquired (denied permission, missing
// device node) the Sender reports Ready()==false and its capability
// flags describe the deficiency.
func New() *Sender {
	s := &Sender{b: newPlatformBackend(), keyDelay: defaultKeyDelay}
	slog.Info("sender: constructed", "backend", s.Type(), "ready", s.Ready())
	return s
}

// newWithBackend exists for in-package tests.
func newWithBackend(b backend) *Sender {
	return &Sender{b: b, keyDelay: defaultKeyDelay}
}

// Type returns the fixed backend identity.
func (s *Sender) Type() BackendType { return s.b.backendType() }

// Capabilities returns the snapshot computed at construction or at the
// last permission request. No side effects.
func (s *Sender) Capabilities() Capabilities { return s.b.capabilities() }

// Ready reports whether the underlying OS handle is valid.
func (s *Sender) Ready() bool { return s.b.ready() }

// RequestPermissions triggers the OS permission flow where one exists
// and reports the resulting readiness. Always safe to call; backends
// without a runtime flow degrade to returning current readiness.
func (s *Sender) RequestPermissions() bool { return s.b.requestPermissions() }

// KeyDown emits a single press. When key is a canonical modifier key its
// tracked bit is set only if the emission succeeded, so the bitmask
// never reflects a key that was never pressed.
func (s *Sender) KeyDown(key keys.Key) error {
	err := s.b.sendKey(key, true)
	if err != nil {
		slog.Debug("sender: key down failed", "key", key, "error", err)
		return err
	}
	if m := key.Modifier(); m != keys.None {
		s.mods |= m
	}
	return nil
}

// KeyUp emits a single release. The tracked modifier bit is cleared
// after the emission attempt regardless of its outcome: a failed release
// must not leave a phantom held modifier behind.
func (s *Sender) KeyUp(key keys.Key) error {
	err := s.b.sendKey(key, false)
	s.mods = s.mods.Without(key.Modifier())
	if err != nil {
		slog.Debug("sender: key up failed", "key", key, "error", err)
	}
	return err
}

// Tap presses and releases key with the configured inter-event delay in
// between. No release is attempted when the press already failed, to
// avoid spurious release events.
func (s *Sender) Tap(key keys.Key) error {
	if err := s.KeyDown(key); err != nil {
		return err
	}
	s.delay()
	return s.KeyUp(key)
}

// ActiveModifiers returns the bitmask of modifiers this Sender has
// pressed and not yet released. It does not reflect global OS state.
func (s *Sender) ActiveModifiers() keys.Modifier { return s.mods }

// HoldModifier presses the Left-side physical key for every bit set in
// mods. All constituent keys are attempted even after a failure; the
// individual errors are joined.
func (s *Sender) HoldModifier(mods keys.Modifier) error {
	var errs []error
	for _, m := range []keys.Modifier{keys.Shift, keys.Ctrl, keys.Alt, keys.Super, keys.CapsLock, keys.NumLock} {
		if mods.Has(m) {
			if err := s.KeyDown(m.LeftKey()); err != nil {
				errs = append(errs, fmt.Errorf("hold %s: %w", m, err))
			}
		}
	}
	return errors.Join(errs...)
}

// ReleaseModifier releases the Left-side physical key for every bit set
// in mods, attempting all constituents regardless of failures.
func (s *Sender) ReleaseModifier(mods keys.Modifier) error {
	var errs []error
	for _, m := range []keys.Modifier{keys.Shift, keys.Ctrl, keys.Alt, keys.Super, keys.CapsLock, keys.NumLock} {
		if mods.Has(m) {
			if err := s.KeyUp(m.LeftKey()); err != nil {
				errs = append(errs, fmt.Errorf("release %s: %w", m, err))
			}
		}
	}
	return errors.Join(errs...)
}

// ReleaseAllModifiers releases every modifier in the set.
func (s *Sender) ReleaseAllModifiers() error {
	return s.ReleaseModifier(keys.Shift | keys.Ctrl | keys.Alt | keys.Super | keys.CapsLock | keys.NumLock)
}

// Combo holds mods, taps key, and releases mods. The release is
// attempted unconditionally so a failing tap cannot leave modifiers
// stuck; the returned error reflects the tap outcome.
func (s *Sender) Combo(mods keys.Modifier, key keys.Key) error {
	if err := s.HoldModifier(mods); err != nil {
		slog.Debug("sender: combo hold failed", "mods", mods, "error", err)
	}
	s.delay()
	tapErr := s.Tap(key)
	s.delay()
	if err := s.ReleaseModifier(mods); err != nil {
		slog.Debug("sender: combo release failed", "mods", mods, "error", err)
	}
	return tapErr
}

// TypeText injects a UTF-8 string. Backends without Unicode injection
// fail with ErrTextUnsupported and perform no action.
func (s *Sender) TypeText(text string) error {
	return s.b.typeText(text)
}

// TypeCharacter injects a single Unicode codepoint.
func (s *Sender) TypeCharacter(cp rune) error {
	return s.b.typeCharacter(cp)
}

// Flush forces any buffered emission to be delivered to the OS.
func (s *Sender) Flush() { s.b.flush() }

// SetKeyDelay sets the inter-event delay, in microseconds, used by Tap
// and Combo. Takes effect on subsequent calls only.
func (s *Sender) SetKeyDelay(microseconds uint32) {
	s.keyDelay = time.Duration(microseconds) * time.Microsecond
}

// Close releases the OS injection handle synchronously. The Sender must
// not be used afterwards.
func (s *Sender) Close() {
	s.b.close()
}

func (s *Sender) delay() {
	if s.keyDelay > 0 {
		time.Sleep(s.keyDelay)
	}
}
