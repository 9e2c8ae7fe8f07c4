package keys

import "testing"

func TestModifierHasWithout(t *testing.T) {
	mods := Ctrl | Shift
	if !mods.Has(Ctrl) || !mods.Has(Shift) {
		t.Fatalf("Ctrl|Shift should contain both bits")
	}
	if mods.Has(Alt) {
		t.Fatalf("Ctrl|Shift must not contain Alt")
	}
	if !mods.Has(Ctrl | Shift) {
		t.Fatalf("Has should accept multi-bit masks")
	}
	if mods.Has(Ctrl | Alt) {
		t.Fatalf("Has with a partially present mask should be false")
	}

	if got := mods.Without(Ctrl); got != Shift {
		t.Fatalf("Without(Ctrl) = %v, want Shift", got)
	}
	if got := mods.Without(Alt); got != mods {
		t.Fatalf("Without an absent bit changed the mask: %v", got)
	}
	if got := mods.Without(mods); got != None {
		t.Fatalf("Without(self) = %v, want None", got)
	}
}

func TestModifierString(t *testing.T) {
	cases := []struct {
		mods Modifier
		want string
	}{
		{None, "None"},
		{Shift, "Shift"},
		{Ctrl | Shift, "Shift|Ctrl"},
		{Shift | Ctrl | Alt | Super | CapsLock | NumLock, "Shift|Ctrl|Alt|Super|CapsLock|NumLock"},
	}
	for _, tc := range cases {
		if got := tc.mods.String(); got != tc.want {
			t.Fatalf("(%#x).String() = %q, want %q", uint8(tc.mods), got, tc.want)
		}
	}
}

func TestModifierLeftKey(t *testing.T) {
	cases := []struct {
		mod  Modifier
		want Key
	}{
		{Shift, ShiftLeft},
		{Ctrl, CtrlLeft},
		{Alt, AltLeft},
		{Super, SuperLeft},
		{CapsLock, CapsLockKey},
		{NumLock, NumLockKey},
		{None, Unknown},
		{Ctrl | Shift, Unknown},
	}
	for _, tc := range cases {
		if got := tc.mod.LeftKey(); got != tc.want {
			t.Fatalf("(%v).LeftKey() = %v, want %v", tc.mod, got, tc.want)
		}
	}
}
