//go:build darwin

package keycode

import "typrio/keys"

// darwinTable maps logical keys to macOS virtual key codes (kVK_* from
// Carbon's Events.h). Media keys use the NX system-defined event path
// instead of virtual key codes and are intentionally absent; operations
// on them fail as unmapped.
var darwinTable = map[keys.Key]uint16{
	keys.A: 0x00, keys.S: 0x01, keys.D: 0x02, keys.F: 0x03,
	keys.H: 0x04, keys.G: 0x05, keys.Z: 0x06, keys.X: 0x07,
	keys.C: 0x08, keys.V: 0x09, keys.B: 0x0B, keys.Q: 0x0C,
	keys.W: 0x0D, keys.E: 0x0E, keys.R: 0x0F, keys.Y: 0x10,
	keys.T: 0x11, keys.O: 0x1F, keys.U: 0x20, keys.I: 0x22,
	keys.P: 0x23, keys.L: 0x25, keys.J: 0x26, keys.K: 0x28,
	keys.N: 0x2D, keys.M: 0x2E,

	keys.Num1: 0x12, keys.Num2: 0x13, keys.Num3: 0x14, keys.Num4: 0x15,
	keys.Num6: 0x16, keys.Num5: 0x17, keys.Num9: 0x19, keys.Num7: 0x1A,
	keys.Num8: 0x1C, keys.Num0: 0x1D,

	keys.Equal:        0x18,
	keys.Minus:        0x1B,
	keys.RightBracket: 0x1E,
	keys.LeftBracket:  0x21,
	keys.Enter:        0x24,
	keys.Apostrophe:   0x27,
	keys.Semicolon:    0x29,
	keys.Backslash:    0x2A,
	keys.Comma:        0x2B,
	keys.Slash:        0x2C,
	keys.Period:       0x2F,
	keys.Tab:          0x30,
	keys.Space:        0x31,
	keys.Grave:        0x32,
	keys.Backspace:    0x33,
	keys.Escape:       0x35,

	keys.SuperRight:  0x36,
	keys.SuperLeft:   0x37,
	keys.ShiftLeft:   0x38,
	keys.CapsLockKey: 0x39,
	keys.AltLeft:     0x3A,
	keys.CtrlLeft:    0x3B,
	keys.ShiftRight:  0x3C,
	keys.AltRight:    0x3D,
	keys.CtrlRight:   0x3E,

	keys.F17:            0x40,
	keys.NumpadDecimal:  0x41,
	keys.NumpadMultiply: 0x43,
	keys.NumpadPlus:     0x45,
	keys.NumLockKey:     0x47, // keypad clear shares the NumLock position
	keys.VolumeUp:       0x48,
	keys.VolumeDown:     0x49,
	keys.Mute:           0x4A,
	keys.NumpadDivide:   0x4B,
	keys.NumpadEnter:    0x4C,
	keys.NumpadMinus:    0x4E,
	keys.F18:            0x4F,
	keys.F19:            0x50,
	keys.F20:            0x5A,

	keys.Numpad0: 0x52, keys.Numpad1: 0x53, keys.Numpad2: 0x54,
	keys.Numpad3: 0x55, keys.Numpad4: 0x56, keys.Numpad5: 0x57,
	keys.Numpad6: 0x58, keys.Numpad7: 0x59, keys.Numpad8: 0x5B,
	keys.Numpad9: 0x5C,

	keys.F5: 0x60, keys.F6: 0x61, keys.F7: 0x62, keys.F3: 0x63,
	keys.F8: 0x64, keys.F9: 0x65, keys.F11: 0x67, keys.F13: 0x69,
	keys.F16: 0x6A, keys.F14: 0x6B, keys.F10: 0x6D,
	keys.Menu: 0x6E,
	keys.F12:  0x6F, keys.F15: 0x71,
	keys.Insert:   0x72, // "help" on older boards
	keys.Home:     0x73,
	keys.PageUp:   0x74,
	keys.Delete:   0x75,
	keys.F4:       0x76,
	keys.End:      0x77,
	keys.F2:       0x78,
	keys.PageDown: 0x79,
	keys.F1:       0x7A,
	keys.Left:     0x7B,
	keys.Right:    0x7C,
	keys.Down:     0x7D,
	keys.Up:       0x7E,
}

// Table returns a fresh copy of the logical-key to virtual-key mapping.
func Table() map[keys.Key]uint16 {
	return clone(darwinTable)
}

// Lookup resolves a macOS virtual key code to its logical key.
func Lookup(code uint16) keys.Key {
	return darwinReverse[code]
}

var darwinReverse = reverse(darwinTable)
