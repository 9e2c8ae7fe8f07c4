//go:build linux && !x11

package sender

import (
	"fmt"
	"log/slog"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"typrio/internal/keycode"
	"typrio/keys"
)

// uinput ioctl numbers and event types (linux/uinput.h, linux/input.h).
const (
	uiSetEvBit   = 0x40045564 // UI_SET_EVBIT
	uiSetKeyBit  = 0x40045565 // UI_SET_KEYBIT
	uiDevSetup   = 0x405c5503 // UI_DEV_SETUP
	uiDevCreate  = 0x5501     // UI_DEV_CREATE
	uiDevDestroy = 0x5502     // UI_DEV_DESTROY

	evSyn = 0x00
	evKey = 0x01

	synReport = 0

	maxKeyBit = 0x2ff // KEY_MAX
)

type inputID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// uinputSetup mirrors struct uinput_setup.
type uinputSetup struct {
	ID           inputID
	Name         [80]byte
	FFEffectsMax uint32
}

// inputEvent mirrors struct input_event.
type inputEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// uinputBackend emits physical-style key events through a virtual input
// device node created under /dev/uinput.
type uinputBackend struct {
	fd    int
	codes map[keys.Key]uint16
}

func newPlatformBackend() backend {
	b := &uinputBackend{fd: -1, codes: keycode.Table()}

	fd, err := unix.Open("/dev/uinput", unix.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		slog.Error("sender: failed to open /dev/uinput", "error", err)
		return b
	}

	if err := unix.IoctlSetInt(fd, uiSetEvBit, evKey); err != nil {
		slog.Error("sender: UI_SET_EVBIT failed", "error", err)
		unix.Close(fd)
		return b
	}
	for code := 0; code <= maxKeyBit; code++ {
		_ = unix.IoctlSetInt(fd, uiSetKeyBit, code)
	}

	var setup uinputSetup
	setup.ID.Bustype = 0x03 // BUS_USB
	setup.ID.Vendor = 0x1234
	setup.ID.Product = 0x5678
	copy(setup.Name[:], "Virtual Keyboard")
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uiDevSetup, uintptr(unsafe.Pointer(&setup))); errno != 0 {
		slog.Error("sender: UI_DEV_SETUP failed", "errno", errno)
		unix.Close(fd)
		return b
	}
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uiDevCreate, 0); errno != 0 {
		slog.Error("sender: UI_DEV_CREATE failed", "errno", errno)
		unix.Close(fd)
		return b
	}

	// Give udev time to create the device node before anyone reads from it.
	time.Sleep(100 * time.Millisecond)

	b.fd = fd
	slog.Debug("sender: uinput device initialized", "fd", fd, "keymap_entries", len(b.codes))
	return b
}

func (b *uinputBackend) ready() bool { return b.fd >= 0 }

func (b *uinputBackend) backendType() BackendType { return LinuxUInput }

func (b *uinputBackend) capabilities() Capabilities {
	return Capabilities{
		CanInjectKeys:     b.fd >= 0,
		CanInjectText:     false, // physical key codes only
		CanSimulateHID:    true,
		SupportsKeyRepeat: true,
		NeedsUinputAccess: true,
	}
}

func (b *uinputBackend) requestPermissions() bool {
	// No runtime flow exists: /dev/uinput access comes from udev rules
	// or running as root.
	return b.ready()
}

func (b *uinputBackend) sendKey(k keys.Key, down bool) error {
	if b.fd < 0 {
		return ErrNotReady
	}
	code, ok := b.codes[k]
	if !ok {
		return fmt.Errorf("key %s: %w", k, ErrUnmappedKey)
	}
	val := int32(0)
	if down {
		val = 1
	}
	if err := b.emit(evKey, code, val); err != nil {
		return err
	}
	return b.emit(evSyn, synReport, 0)
}

func (b *uinputBackend) emit(typ, code uint16, value int32) error {
	ev := inputEvent{Type: typ, Code: code, Value: value}
	buf := (*(*[unsafe.Sizeof(ev)]byte)(unsafe.Pointer(&ev)))[:]
	if _, err := unix.Write(b.fd, buf); err != nil {
		return fmt.Errorf("uinput write (type=%d code=%d value=%d): %w", typ, code, value, err)
	}
	return nil
}

func (b *uinputBackend) typeText(string) error {
	// Converting Unicode to key events depends on keyboard layout and is
	// outside the scope of this backend.
	return ErrTextUnsupported
}

func (b *uinputBackend) typeCharacter(rune) error {
	return ErrTextUnsupported
}

func (b *uinputBackend) flush() {
	if b.fd >= 0 {
		_ = b.emit(evSyn, synReport, 0)
	}
}

func (b *uinputBackend) close() {
	if b.fd >= 0 {
		_, _, _ = unix.Syscall(unix.SYS_IOCTL, uintptr(b.fd), uiDevDestroy, 0)
		_ = unix.Close(b.fd)
		slog.Debug("sender: uinput device destroyed", "fd", b.fd)
		b.fd = -1
	}
}
