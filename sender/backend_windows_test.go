//go:build windows

package sender

import (
	"testing"
	"unsafe"
)

func TestWinInputMatchesNativeLayout(t *testing.T) {
	ptrSize := unsafe.Sizeof(uintptr(0))

	wantSize, wantOff := uintptr(40), uintptr(8)
	if ptrSize == 4 {
		wantSize, wantOff = 28, 4
	}
	if got := unsafe.Sizeof(winInput{}); got != wantSize {
		t.Fatalf("sizeof(winInput) = %d, want %d", got, wantSize)
	}
	if got := unsafe.Offsetof(winInput{}.Ki); got != wantOff {
		t.Fatalf("offsetof(winInput.Ki) = %d, want %d", got, wantOff)
	}
}
