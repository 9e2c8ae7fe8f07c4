package keycode

import (
	"testing"

	"typrio/keys"
)

func TestCloneIsIndependent(t *testing.T) {
	src := map[keys.Key]uint16{keys.A: 30, keys.B: 48}
	dst := clone(src)
	dst[keys.A] = 99
	delete(dst, keys.B)
	if src[keys.A] != 30 || src[keys.B] != 48 {
		t.Fatalf("mutating the clone changed the source: %v", src)
	}
}

func TestReverseInverts(t *testing.T) {
	src := map[keys.Key]uint16{keys.A: 30, keys.Enter: 28}
	rev := reverse(src)
	if rev[30] != keys.A || rev[28] != keys.Enter {
		t.Fatalf("reverse = %v", rev)
	}
	if _, ok := rev[0]; ok {
		t.Fatal("reverse contains an unmapped code")
	}
}
