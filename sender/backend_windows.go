//go:build windows

package sender

import (
	"fmt"
	"log/slog"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"

	"typrio/internal/keycode"
	"typrio/keys"
)

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

const (
	inputKeyboard = 1

	keyeventfExtendedKey = 0x0001
	keyeventfKeyUp       = 0x0002
	keyeventfUnicode     = 0x0004
)

type keybdInput struct {
	Vk        uint16
	Scan      uint16
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// sendInputBackend injects keys through user32 SendInput.
type sendInputBackend struct {
	codes map[keys.Key]uint16
	avail bool
}

func newPlatformBackend() backend {
	b := &sendInputBackend{codes: keycode.Table()}
	if err := procSendInput.Find(); err != nil {
		slog.Error("sender: SendInput unavailable", "error", err)
	} else {
		b.avail = true
	}
	slog.Debug("sender: sendinput backend initialized", "keymap_entries", len(b.codes))
	return b
}

func (b *sendInputBackend) ready() bool { return b.avail }

func (b *sendInputBackend) backendType() BackendType { return WindowsSendInput }

func (b *sendInputBackend) capabilities() Capabilities {
	return Capabilities{
		CanInjectKeys: b.avail,
		CanInjectText: b.avail,
	}
}

func (b *sendInputBackend) requestPermissions() bool {
	// Windows gates nothing here; injection just works.
	return b.avail
}

// extendedKeys need KEYEVENTF_EXTENDEDKEY so navigation keys are not
// interpreted as their numpad twins.
var extendedKeys = map[keys.Key]bool{
	keys.Left: true, keys.Right: true, keys.Up: true, keys.Down: true,
	keys.Home: true, keys.End: true, keys.PageUp: true, keys.PageDown: true,
	keys.Delete: true, keys.Insert: true, keys.NumpadEnter: true,
	keys.NumpadDivide: true, keys.CtrlRight: true, keys.AltRight: true,
	keys.SuperLeft: true, keys.SuperRight: true, keys.NumLockKey: true,
}

func (b *sendInputBackend) sendKey(k keys.Key, down bool) error {
	if !b.avail {
		return ErrNotReady
	}
	vk, ok := b.codes[k]
	if !ok {
		return fmt.Errorf("key %s: %w", k, ErrUnmappedKey)
	}
	var flags uint32
	if !down {
		flags |= keyeventfKeyUp
	}
	if extendedKeys[k] {
		flags |= keyeventfExtendedKey
	}
	return b.send(winInput{
		Type: inputKeyboard,
		Ki:   keybdInput{Vk: vk, Flags: flags},
	})
}

func (b *sendInputBackend) typeText(text string) error {
	if !b.avail {
		return ErrNotReady
	}
	for _, unit := range utf16.Encode([]rune(text)) {
		down := winInput{Type: inputKeyboard, Ki: keybdInput{Scan: unit, Flags: keyeventfUnicode}}
		up := winInput{Type: inputKeyboard, Ki: keybdInput{Scan: unit, Flags: keyeventfUnicode | keyeventfKeyUp}}
		if err := b.send(down); err != nil {
			return err
		}
		if err := b.send(up); err != nil {
			return err
		}
	}
	return nil
}

func (b *sendInputBackend) typeCharacter(cp rune) error {
	return b.typeText(string(cp))
}

func (b *sendInputBackend) send(in winInput) error {
	n, _, err := procSendInput.Call(
		1,
		uintptr(unsafe.Pointer(&in)),
		unsafe.Sizeof(in),
	)
	if n == 0 {
		return fmt.Errorf("SendInput failed: %w", err)
	}
	return nil
}

func (b *sendInputBackend) flush() {}

func (b *sendInputBackend) close() {}
