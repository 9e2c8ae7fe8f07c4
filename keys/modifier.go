package keys

import "strings"

// Modifier is a bitmask over the modifier set. Bit positions are part of
// the foreign ABI and must not change.
type Modifier uint8

const (
	None     Modifier = 0x00
	Shift    Modifier = 0x01
	Ctrl     Modifier = 0x02
	Alt      Modifier = 0x04
	Super    Modifier = 0x08
	CapsLock Modifier = 0x10
	NumLock  Modifier = 0x20
)

// Has reports whether every bit of m is set in mods.
func (mods Modifier) Has(m Modifier) bool {
	return mods&m == m
}

// Without returns mods with the bits of m cleared.
func (mods Modifier) Without(m Modifier) Modifier {
	return mods &^ m
}

var modifierNames = []struct {
	bit  Modifier
	name string
}{
	{Shift, "Shift"},
	{Ctrl, "Ctrl"},
	{Alt, "Alt"},
	{Super, "Super"},
	{CapsLock, "CapsLock"},
	{NumLock, "NumLock"},
}

// String renders the set bits joined by "|", or "None" for the empty set.
func (mods Modifier) String() string {
	if mods == None {
		return "None"
	}
	var parts []string
	for _, m := range modifierNames {
		if mods.Has(m.bit) {
			parts = append(parts, m.name)
		}
	}
	return strings.Join(parts, "|")
}

// LeftKey returns the Left-side physical key asserting the single
// modifier bit m, or Unknown when m is not a single defined bit.
// Sender hold/release helpers decompose bitmasks through it.
func (m Modifier) LeftKey() Key {
	switch m {
	case Shift:
		return ShiftLeft
	case Ctrl:
		return CtrlLeft
	case Alt:
		return AltLeft
	case Super:
		return SuperLeft
	case CapsLock:
		return CapsLockKey
	case NumLock:
		return NumLockKey
	}
	return Unknown
}
