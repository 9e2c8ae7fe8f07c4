//go:build windows

package keycode

import "typrio/keys"

// windowsTable maps logical keys to Win32 virtual-key codes.
var windowsTable = map[keys.Key]uint16{
	keys.A: 0x41, keys.B: 0x42, keys.C: 0x43, keys.D: 0x44,
	keys.E: 0x45, keys.F: 0x46, keys.G: 0x47, keys.H: 0x48,
	keys.I: 0x49, keys.J: 0x4A, keys.K: 0x4B, keys.L: 0x4C,
	keys.M: 0x4D, keys.N: 0x4E, keys.O: 0x4F, keys.P: 0x50,
	keys.Q: 0x51, keys.R: 0x52, keys.S: 0x53, keys.T: 0x54,
	keys.U: 0x55, keys.V: 0x56, keys.W: 0x57, keys.X: 0x58,
	keys.Y: 0x59, keys.Z: 0x5A,

	keys.Num0: 0x30, keys.Num1: 0x31, keys.Num2: 0x32, keys.Num3: 0x33,
	keys.Num4: 0x34, keys.Num5: 0x35, keys.Num6: 0x36, keys.Num7: 0x37,
	keys.Num8: 0x38, keys.Num9: 0x39,

	keys.F1: 0x70, keys.F2: 0x71, keys.F3: 0x72, keys.F4: 0x73,
	keys.F5: 0x74, keys.F6: 0x75, keys.F7: 0x76, keys.F8: 0x77,
	keys.F9: 0x78, keys.F10: 0x79, keys.F11: 0x7A, keys.F12: 0x7B,
	keys.F13: 0x7C, keys.F14: 0x7D, keys.F15: 0x7E, keys.F16: 0x7F,
	keys.F17: 0x80, keys.F18: 0x81, keys.F19: 0x82, keys.F20: 0x83,

	keys.Enter:     0x0D, // VK_RETURN
	keys.Escape:    0x1B,
	keys.Backspace: 0x08,
	keys.Tab:       0x09,
	keys.Space:     0x20,

	keys.Left:     0x25,
	keys.Up:       0x26,
	keys.Right:    0x27,
	keys.Down:     0x28,
	keys.Home:     0x24,
	keys.End:      0x23,
	keys.PageUp:   0x21, // VK_PRIOR
	keys.PageDown: 0x22, // VK_NEXT
	keys.Delete:   0x2E,
	keys.Insert:   0x2D,

	keys.Numpad0: 0x60, keys.Numpad1: 0x61, keys.Numpad2: 0x62,
	keys.Numpad3: 0x63, keys.Numpad4: 0x64, keys.Numpad5: 0x65,
	keys.Numpad6: 0x66, keys.Numpad7: 0x67, keys.Numpad8: 0x68,
	keys.Numpad9:        0x69,
	keys.NumpadDivide:   0x6F,
	keys.NumpadMultiply: 0x6A,
	keys.NumpadMinus:    0x6D,
	keys.NumpadPlus:     0x6B,
	keys.NumpadEnter:    0x0D, // VK_RETURN with the extended-key flag
	keys.NumpadDecimal:  0x6E,

	keys.ShiftLeft:   0xA0,
	keys.ShiftRight:  0xA1,
	keys.CtrlLeft:    0xA2,
	keys.CtrlRight:   0xA3,
	keys.AltLeft:     0xA4,
	keys.AltRight:    0xA5,
	keys.SuperLeft:   0x5B,
	keys.SuperRight:  0x5C,
	keys.CapsLockKey: 0x14,
	keys.NumLockKey:  0x90,

	keys.Menu:           0x5D, // VK_APPS
	keys.Mute:           0xAD,
	keys.VolumeDown:     0xAE,
	keys.VolumeUp:       0xAF,
	keys.MediaPlayPause: 0xB3,
	keys.MediaStop:      0xB2,
	keys.MediaNext:      0xB0,
	keys.MediaPrevious:  0xB1,

	keys.Grave:        0xC0,
	keys.Minus:        0xBD,
	keys.Equal:        0xBB,
	keys.LeftBracket:  0xDB,
	keys.RightBracket: 0xDD,
	keys.Backslash:    0xDC,
	keys.Semicolon:    0xBA,
	keys.Apostrophe:   0xDE,
	keys.Comma:        0xBC,
	keys.Period:       0xBE,
	keys.Slash:        0xBF,
}

// Table returns a fresh copy of the logical-key to virtual-key mapping.
func Table() map[keys.Key]uint16 {
	return clone(windowsTable)
}

// Lookup resolves a Win32 virtual-key code to its logical key.
func Lookup(code uint16) keys.Key {
	return windowsReverse[code]
}

var windowsReverse = func() map[uint16]keys.Key {
	m := reverse(windowsTable)
	// VK_RETURN is shared with NumpadEnter; the hook cannot tell them
	// apart without the extended flag, so the plain key wins.
	m[0x0D] = keys.Enter
	return m
}()
