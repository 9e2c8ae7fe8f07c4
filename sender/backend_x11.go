//go:build linux && x11

package sender

import (
	"fmt"
	"log/slog"

	"github.com/go-vgo/robotgo"

	"typrio/keys"
)

// x11Backend posts synthetic key events through the display server via
// robotgo (XTest). Unlike the uinput backend it can inject Unicode text,
// but it is not HID simulation and requires a running X session.
type x11Backend struct {
	names map[keys.Key]string
}

func newPlatformBackend() backend {
	b := &x11Backend{names: robotgoNames()}
	slog.Debug("sender: x11 backend initialized", "keymap_entries", len(b.names))
	return b
}

func (b *x11Backend) ready() bool { return true }

func (b *x11Backend) backendType() BackendType { return LinuxX11 }

func (b *x11Backend) capabilities() Capabilities {
	return Capabilities{
		CanInjectKeys: true,
		CanInjectText: true,
	}
}

func (b *x11Backend) requestPermissions() bool { return b.ready() }

func (b *x11Backend) sendKey(k keys.Key, down bool) error {
	name, ok := b.names[k]
	if !ok {
		return fmt.Errorf("key %s: %w", k, ErrUnmappedKey)
	}
	dir := "down"
	if !down {
		dir = "up"
	}
	if err := robotgo.KeyToggle(name, dir); err != nil {
		return fmt.Errorf("x11 key toggle %s %s: %w", name, dir, err)
	}
	return nil
}

func (b *x11Backend) typeText(text string) error {
	robotgo.TypeStr(text)
	return nil
}

func (b *x11Backend) typeCharacter(cp rune) error {
	robotgo.TypeStr(string(cp))
	return nil
}

func (b *x11Backend) flush() {}

func (b *x11Backend) close() {}

// robotgoNames builds the per-instance logical-key to robotgo key name
// table. Names follow robotgo's documented key list.
func robotgoNames() map[keys.Key]string {
	m := map[keys.Key]string{
		keys.Enter:     "enter",
		keys.Escape:    "esc",
		keys.Backspace: "backspace",
		keys.Tab:       "tab",
		keys.Space:     "space",

		keys.Left:     "left",
		keys.Right:    "right",
		keys.Up:       "up",
		keys.Down:     "down",
		keys.Home:     "home",
		keys.End:      "end",
		keys.PageUp:   "pageup",
		keys.PageDown: "pagedown",
		keys.Delete:   "delete",
		keys.Insert:   "insert",

		keys.NumpadDivide:   "num/",
		keys.NumpadMultiply: "num*",
		keys.NumpadMinus:    "num-",
		keys.NumpadPlus:     "num+",
		keys.NumpadEnter:    "num_enter",
		keys.NumpadDecimal:  "num.",

		keys.ShiftLeft:   "lshift",
		keys.ShiftRight:  "rshift",
		keys.CtrlLeft:    "lctrl",
		keys.CtrlRight:   "rctrl",
		keys.AltLeft:     "lalt",
		keys.AltRight:    "ralt",
		keys.SuperLeft:   "lcmd",
		keys.SuperRight:  "rcmd",
		keys.CapsLockKey: "capslock",
		keys.NumLockKey:  "num_lock",

		keys.Menu:           "menu",
		keys.Mute:           "audio_mute",
		keys.VolumeDown:     "audio_vol_down",
		keys.VolumeUp:       "audio_vol_up",
		keys.MediaPlayPause: "audio_play",
		keys.MediaStop:      "audio_stop",
		keys.MediaNext:      "audio_next",
		keys.MediaPrevious:  "audio_prev",

		keys.Grave:        "`",
		keys.Minus:        "-",
		keys.Equal:        "=",
		keys.LeftBracket:  "[",
		keys.RightBracket: "]",
		keys.Backslash:    "\\",
		keys.Semicolon:    ";",
		keys.Apostrophe:   "'",
		keys.Comma:        ",",
		keys.Period:       ".",
		keys.Slash:        "/",
	}
	for i := 0; i < 26; i++ {
		m[keys.A+keys.Key(i)] = string(rune('a' + i))
	}
	for i := 0; i < 10; i++ {
		m[keys.Num0+keys.Key(i)] = string(rune('0' + i))
		m[keys.Numpad0+keys.Key(i)] = fmt.Sprintf("num%d", i)
	}
	for i := 0; i < 20; i++ {
		m[keys.F1+keys.Key(i)] = fmt.Sprintf("f%d", i+1)
	}
	return m
}
