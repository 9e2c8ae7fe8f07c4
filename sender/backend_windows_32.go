//go:build windows && (386 || arm)

package sender

// winInput mirrors the 32-bit INPUT struct: no padding after the type
// tag, and MOUSEINPUT pads the union to 24 bytes.
type winInput struct {
	Type uint32
	Ki   keybdInput
	_    [8]byte
}
