// Package keys defines the platform-independent keyboard model: a closed
// set of logical keys and a modifier bitmask. Backends translate these
// into native key codes; nothing in this package touches the OS.
package keys

// Key identifies a logical keyboard key, decoupled from scan codes.
// The zero value is Unknown.
type Key uint16

const (
	Unknown Key = iota

	// Letters
	A
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z

	// Digits (top row)
	Num0
	Num1
	Num2
	Num3
	Num4
	Num5
	Num6
	Num7
	Num8
	Num9

	// Function keys
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20

	// Control
	Enter
	Escape
	Backspace
	Tab
	Space

	// Navigation
	Left
	Right
	Up
	Down
	Home
	End
	PageUp
	PageDown
	Delete
	Insert

	// Numpad
	Numpad0
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9
	NumpadDivide
	NumpadMultiply
	NumpadMinus
	NumpadPlus
	NumpadEnter
	NumpadDecimal

	// Modifiers as keys
	ShiftLeft
	ShiftRight
	CtrlLeft
	CtrlRight
	AltLeft
	AltRight
	SuperLeft
	SuperRight
	CapsLockKey
	NumLockKey

	// Misc / media
	Menu
	Mute
	VolumeDown
	VolumeUp
	MediaPlayPause
	MediaStop
	MediaNext
	MediaPrevious

	// Punctuation (layout-dependent positions on a US layout)
	Grave
	Minus
	Equal
	LeftBracket
	RightBracket
	Backslash
	Semicolon
	Apostrophe
	Comma
	Period
	Slash

	maxKey
)

// IsModifier reports whether k is one of the canonical modifier keys
// tracked by a Sender.
func (k Key) IsModifier() bool {
	return k.Modifier() != None
}

// Modifier returns the modifier bit asserted by pressing k, or None for
// non-modifier keys.
func (k Key) Modifier() Modifier {
	switch k {
	case ShiftLeft, ShiftRight:
		return Shift
	case CtrlLeft, CtrlRight:
		return Ctrl
	case AltLeft, AltRight:
		return Alt
	case SuperLeft, SuperRight:
		return Super
	case CapsLockKey:
		return CapsLock
	case NumLockKey:
		return NumLock
	}
	return None
}
