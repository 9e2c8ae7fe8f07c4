package keys

import "strings"

// keyNames holds the canonical name for every defined key. Parse accepts
// these case-insensitively plus the aliases below.
var keyNames = map[Key]string{
	Unknown: "Unknown",

	A: "A", B: "B", C: "C", D: "D", E: "E", F: "F", G: "G", H: "H",
	I: "I", J: "J", K: "K", L: "L", M: "M", N: "N", O: "O", P: "P",
	Q: "Q", R: "R", S: "S", T: "T", U: "U", V: "V", W: "W", X: "X",
	Y: "Y", Z: "Z",

	Num0: "0", Num1: "1", Num2: "2", Num3: "3", Num4: "4",
	Num5: "5", Num6: "6", Num7: "7", Num8: "8", Num9: "9",

	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5",
	F6: "F6", F7: "F7", F8: "F8", F9: "F9", F10: "F10",
	F11: "F11", F12: "F12", F13: "F13", F14: "F14", F15: "F15",
	F16: "F16", F17: "F17", F18: "F18", F19: "F19", F20: "F20",

	Enter:     "Enter",
	Escape:    "Escape",
	Backspace: "Backspace",
	Tab:       "Tab",
	Space:     "Space",

	Left:     "Left",
	Right:    "Right",
	Up:       "Up",
	Down:     "Down",
	Home:     "Home",
	End:      "End",
	PageUp:   "PageUp",
	PageDown: "PageDown",
	Delete:   "Delete",
	Insert:   "Insert",

	Numpad0: "Numpad0", Numpad1: "Numpad1", Numpad2: "Numpad2",
	Numpad3: "Numpad3", Numpad4: "Numpad4", Numpad5: "Numpad5",
	Numpad6: "Numpad6", Numpad7: "Numpad7", Numpad8: "Numpad8",
	Numpad9:        "Numpad9",
	NumpadDivide:   "NumpadDivide",
	NumpadMultiply: "NumpadMultiply",
	NumpadMinus:    "NumpadMinus",
	NumpadPlus:     "NumpadPlus",
	NumpadEnter:    "NumpadEnter",
	NumpadDecimal:  "NumpadDecimal",

	ShiftLeft:   "ShiftLeft",
	ShiftRight:  "ShiftRight",
	CtrlLeft:    "CtrlLeft",
	CtrlRight:   "CtrlRight",
	AltLeft:     "AltLeft",
	AltRight:    "AltRight",
	SuperLeft:   "SuperLeft",
	SuperRight:  "SuperRight",
	CapsLockKey: "CapsLock",
	NumLockKey:  "NumLock",

	Menu:           "Menu",
	Mute:           "Mute",
	VolumeDown:     "VolumeDown",
	VolumeUp:       "VolumeUp",
	MediaPlayPause: "MediaPlayPause",
	MediaStop:      "MediaStop",
	MediaNext:      "MediaNext",
	MediaPrevious:  "MediaPrevious",

	Grave:        "Grave",
	Minus:        "Minus",
	Equal:        "Equal",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",
	Backslash:    "Backslash",
	Semicolon:    "Semicolon",
	Apostrophe:   "Apostrophe",
	Comma:        "Comma",
	Period:       "Period",
	Slash:        "Slash",
}

// keyAliases maps additional accepted spellings (already lowercased) to
// their keys.
var keyAliases = map[string]Key{
	"esc":          Escape,
	"return":       Enter,
	"bksp":         Backspace,
	"spacebar":     Space,
	"del":          Delete,
	"ins":          Insert,
	"pgup":         PageUp,
	"pgdn":         PageDown,
	"pgdown":       PageDown,
	"arrowleft":    Left,
	"arrowright":   Right,
	"arrowup":      Up,
	"arrowdown":    Down,
	"shift":        ShiftLeft,
	"lshift":       ShiftLeft,
	"rshift":       ShiftRight,
	"ctrl":         CtrlLeft,
	"control":      CtrlLeft,
	"lctrl":        CtrlLeft,
	"rctrl":        CtrlRight,
	"alt":          AltLeft,
	"lalt":         AltLeft,
	"ralt":         AltRight,
	"altgr":        AltRight,
	"super":        SuperLeft,
	"cmd":          SuperLeft,
	"win":          SuperLeft,
	"meta":         SuperLeft,
	"lsuper":       SuperLeft,
	"rsuper":       SuperRight,
	"caps":         CapsLockKey,
	"play":         MediaPlayPause,
	"playpause":    MediaPlayPause,
	"voldown":      VolumeDown,
	"volup":        VolumeUp,
	"backtick":     Grave,
	"dash":         Minus,
	"equals":       Equal,
	"lbracket":     LeftBracket,
	"rbracket":     RightBracket,
	"quote":        Apostrophe,
	"apostrophe":   Apostrophe,
	"dot":          Period,
	"fullstop":     Period,
	"forwardslash": Slash,
}

var nameToKey = func() map[string]Key {
	m := make(map[string]Key, len(keyNames)+len(keyAliases))
	for k, name := range keyNames {
		m[strings.ToLower(name)] = k
	}
	for alias, k := range keyAliases {
		m[alias] = k
	}
	return m
}()

// String returns the canonical name of k. It is total: undefined values
// render as "Unknown".
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Parse resolves a key name to a Key. Matching is case-insensitive and
// accepts common aliases ("esc", "return", "cmd"). Unrecognized names
// yield Unknown; Parse never fails.
func Parse(name string) Key {
	k, ok := nameToKey[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Unknown
	}
	return k
}

// All returns every defined key except Unknown, in declaration order.
func All() []Key {
	out := make([]Key, 0, int(maxKey)-1)
	for k := Key(1); k < maxKey; k++ {
		out = append(out, k)
	}
	return out
}
