//go:build windows && (amd64 || arm64)

package sender

// winInput mirrors the 64-bit INPUT struct: a 32-bit type tag, 4 bytes
// of alignment padding, then the input union, which MOUSEINPUT pads to
// 32 bytes.
type winInput struct {
	Type uint32
	_    uint32
	Ki   keybdInput
	_    [8]byte
}
