package sender

import (
	"errors"
	"testing"

	"typrio/keys"
)

// fakeBackend records emissions and fails on demand.
type fakeBackend struct {
	isReady bool
	caps    Capabilities
	failOn  map[keys.Key]error
	failAll error

	events  []fakeEvent
	texts   []string
	runes   []rune
	flushed int
	closed  bool
}

type fakeEvent struct {
	key  keys.Key
	down bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		isReady: true,
		caps:    Capabilities{CanInjectKeys: true, CanInjectText: true},
		failOn:  make(map[keys.Key]error),
	}
}

func (f *fakeBackend) ready() bool                { return f.isReady }
func (f *fakeBackend) backendType() BackendType   { return LinuxUInput }
func (f *fakeBackend) capabilities() Capabilities { return f.caps }
func (f *fakeBackend) requestPermissions() bool   { return f.isReady }

func (f *fakeBackend) sendKey(k keys.Key, down bool) error {
	if f.failAll != nil {
		return f.failAll
	}
	if err := f.failOn[k]; err != nil {
		return err
	}
	f.events = append(f.events, fakeEvent{k, down})
	return nil
}

func (f *fakeBackend) typeText(text string) error {
	if f.failAll != nil {
		return f.failAll
	}
	f.texts = append(f.texts, text)
	return nil
}

func (f *fakeBackend) typeCharacter(cp rune) error {
	if f.failAll != nil {
		return f.failAll
	}
	f.runes = append(f.runes, cp)
	return nil
}

func (f *fakeBackend) flush() { f.flushed++ }
func (f *fakeBackend) close() { f.closed = true }

func newTestSender(b backend) *Sender {
	s := newWithBackend(b)
	s.SetKeyDelay(0)
	return s
}

func TestTapEmitsPressThenRelease(t *testing.T) {
	b := newFakeBackend()
	s := newTestSender(b)

	if err := s.Tap(keys.A); err != nil {
		t.Fatalf("tap: %v", err)
	}
	want := []fakeEvent{{keys.A, true}, {keys.A, false}}
	if len(b.events) != len(want) {
		t.Fatalf("got %d events, want %d", len(b.events), len(want))
	}
	for i, ev := range want {
		if b.events[i] != ev {
			t.Fatalf("event %d = %+v, want %+v", i, b.events[i], ev)
		}
	}
	if s.ActiveModifiers() != keys.None {
		t.Fatalf("tap of a non-modifier changed tracked modifiers: %v", s.ActiveModifiers())
	}
}

func TestTapSkipsReleaseWhenPressFails(t *testing.T) {
	b := newFakeBackend()
	b.failAll = ErrNotReady
	s := newTestSender(b)

	if err := s.Tap(keys.A); !errors.Is(err, ErrNotReady) {
		t.Fatalf("tap error = %v, want ErrNotReady", err)
	}
	if len(b.events) != 0 {
		t.Fatalf("failed press still produced events: %+v", b.events)
	}
}

func TestKeyDownTracksModifierOnlyOnSuccess(t *testing.T) {
	b := newFakeBackend()
	s := newTestSender(b)

	if err := s.KeyDown(keys.ShiftLeft); err != nil {
		t.Fatalf("key down: %v", err)
	}
	if !s.ActiveModifiers().Has(keys.Shift) {
		t.Fatal("successful ShiftLeft press did not set the Shift bit")
	}

	b.failOn[keys.CtrlLeft] = ErrNotReady
	if err := s.KeyDown(keys.CtrlLeft); !errors.Is(err, ErrNotReady) {
		t.Fatalf("key down error = %v, want ErrNotReady", err)
	}
	if s.ActiveModifiers().Has(keys.Ctrl) {
		t.Fatal("failed CtrlLeft press set the Ctrl bit")
	}
}

func TestKeyUpClearsModifierEvenOnFailure(t *testing.T) {
	b := newFakeBackend()
	s := newTestSender(b)

	if err := s.KeyDown(keys.ShiftLeft); err != nil {
		t.Fatalf("key down: %v", err)
	}
	b.failOn[keys.ShiftLeft] = ErrNotReady
	if err := s.KeyUp(keys.ShiftLeft); !errors.Is(err, ErrNotReady) {
		t.Fatalf("key up error = %v, want ErrNotReady", err)
	}
	if s.ActiveModifiers().Has(keys.Shift) {
		t.Fatal("failed release left the Shift bit set")
	}
}

func TestHoldAndReleaseModifier(t *testing.T) {
	b := newFakeBackend()
	s := newTestSender(b)

	if err := s.HoldModifier(keys.Ctrl | keys.Shift); err != nil {
		t.Fatalf("hold: %v", err)
	}
	if got := s.ActiveModifiers(); got != keys.Ctrl|keys.Shift {
		t.Fatalf("active modifiers = %v, want Ctrl|Shift", got)
	}
	want := []fakeEvent{{keys.ShiftLeft, true}, {keys.CtrlLeft, true}}
	for i, ev := range want {
		if b.events[i] != ev {
			t.Fatalf("event %d = %+v, want %+v", i, b.events[i], ev)
		}
	}

	if err := s.ReleaseModifier(keys.Ctrl); err != nil {
		t.Fatalf("release: %v", err)
	}
	if got := s.ActiveModifiers(); got != keys.Shift {
		t.Fatalf("active modifiers after release = %v, want Shift", got)
	}

	if err := s.ReleaseAllModifiers(); err != nil {
		t.Fatalf("release all: %v", err)
	}
	if got := s.ActiveModifiers(); got != keys.None {
		t.Fatalf("active modifiers after release all = %v, want None", got)
	}
}

func TestHoldModifierAttemptsAllConstituents(t *testing.T) {
	b := newFakeBackend()
	b.failOn[keys.ShiftLeft] = ErrNotReady
	s := newTestSender(b)

	err := s.HoldModifier(keys.Ctrl | keys.Shift)
	if !errors.Is(err, ErrNotReady) {
		t.Fatalf("hold error = %v, want ErrNotReady", err)
	}
	if !s.ActiveModifiers().Has(keys.Ctrl) {
		t.Fatal("Ctrl was not pressed after Shift failed")
	}
	if s.ActiveModifiers().Has(keys.Shift) {
		t.Fatal("failed Shift press set the Shift bit")
	}
}

func TestComboReleasesModifiersWhenTapFails(t *testing.T) {
	b := newFakeBackend()
	b.failOn[keys.A] = ErrUnmappedKey
	s := newTestSender(b)

	if err := s.Combo(keys.Ctrl, keys.A); !errors.Is(err, ErrUnmappedKey) {
		t.Fatalf("combo error = %v, want ErrUnmappedKey", err)
	}
	if got := s.ActiveModifiers(); got != keys.None {
		t.Fatalf("combo left modifiers held: %v", got)
	}
	want := []fakeEvent{{keys.CtrlLeft, true}, {keys.CtrlLeft, false}}
	if len(b.events) != len(want) {
		t.Fatalf("got events %+v, want %+v", b.events, want)
	}
	for i, ev := range want {
		if b.events[i] != ev {
			t.Fatalf("event %d = %+v, want %+v", i, b.events[i], ev)
		}
	}
}

func TestComboOrdersEvents(t *testing.T) {
	b := newFakeBackend()
	s := newTestSender(b)

	if err := s.Combo(keys.Ctrl|keys.Shift, keys.C); err != nil {
		t.Fatalf("combo: %v", err)
	}
	want := []fakeEvent{
		{keys.ShiftLeft, true},
		{keys.CtrlLeft, true},
		{keys.C, true},
		{keys.C, false},
		{keys.ShiftLeft, false},
		{keys.CtrlLeft, false},
	}
	if len(b.events) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(b.events), len(want), b.events)
	}
	for i, ev := range want {
		if b.events[i] != ev {
			t.Fatalf("event %d = %+v, want %+v", i, b.events[i], ev)
		}
	}
}

func TestTypeTextAndCharacter(t *testing.T) {
	b := newFakeBackend()
	s := newTestSender(b)

	if err := s.TypeText("héllo"); err != nil {
		t.Fatalf("type text: %v", err)
	}
	if len(b.texts) != 1 || b.texts[0] != "héllo" {
		t.Fatalf("texts = %v", b.texts)
	}
	if err := s.TypeCharacter('€'); err != nil {
		t.Fatalf("type character: %v", err)
	}
	if len(b.runes) != 1 || b.runes[0] != '€' {
		t.Fatalf("runes = %v", b.runes)
	}
}

func TestFlushAndClose(t *testing.T) {
	b := newFakeBackend()
	s := newTestSender(b)

	s.Flush()
	if b.flushed != 1 {
		t.Fatalf("flushed = %d, want 1", b.flushed)
	}
	s.Close()
	if !b.closed {
		t.Fatal("close did not reach the backend")
	}
}

func TestStubBackendFailsEverything(t *testing.T) {
	s := newTestSender(stubBackend{})

	if s.Ready() {
		t.Fatal("stub backend reports ready")
	}
	if s.Type() != Unavailable {
		t.Fatalf("stub backend type = %v, want Unavailable", s.Type())
	}
	if err := s.Tap(keys.A); !errors.Is(err, ErrNotReady) {
		t.Fatalf("tap error = %v, want ErrNotReady", err)
	}
	if err := s.TypeText("x"); !errors.Is(err, ErrTextUnsupported) {
		t.Fatalf("type text error = %v, want ErrTextUnsupported", err)
	}
	if s.ActiveModifiers() != keys.None {
		t.Fatalf("stub backend tracked modifiers: %v", s.ActiveModifiers())
	}
}
