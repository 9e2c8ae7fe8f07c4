//go:build darwin && cgo

package listener

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>

extern CGEventRef typrioTapCallback(CGEventTapProxy proxy, CGEventType type, CGEventRef event, void *refcon);

static CFMachPortRef typrioCreateTap(void) {
	CGEventMask mask = CGEventMaskBit(kCGEventKeyDown) |
		CGEventMaskBit(kCGEventKeyUp) |
		CGEventMaskBit(kCGEventFlagsChanged);
	return CGEventTapCreate(
		kCGSessionEventTap,
		kCGHeadInsertEventTap,
		kCGEventTapOptionListenOnly,
		mask,
		typrioTapCallback,
		NULL);
}

static uint32_t typrioUnicode(CGEventRef event) {
	UniChar chars[4];
	UniCharCount len = 0;
	CGEventKeyboardGetUnicodeString(event, 4, &len, chars);
	if (len == 0) {
		return 0;
	}
	return chars[0];
}
*/
import "C"

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"typrio/internal/keycode"
	"typrio/keys"
)

// CGEventFlags bits relevant to the modifier mask.
const (
	cgFlagAlphaShift = 1 << 16
	cgFlagShift      = 1 << 17
	cgFlagControl    = 1 << 18
	cgFlagAlternate  = 1 << 19
	cgFlagCommand    = 1 << 20
)

// The event tap callback arrives through C with no good way to carry a
// Go pointer, so the active hook is kept in a package-level slot.
var (
	tapMu     sync.Mutex
	activeTap *cgTapHook
)

// cgTapHook observes keyboard activity through a session event tap.
// Creating the tap fails unless the process has Input Monitoring /
// Accessibility permission.
type cgTapHook struct {
	mu      sync.Mutex
	tap     C.CFMachPortRef
	runLoop C.CFRunLoopRef
	emit    func(Event)
}

func newPlatformHook() hook {
	return &cgTapHook{}
}

func (h *cgTapHook) run(emit func(Event), ready chan<- error) {
	// The CFRunLoop must stay on one OS thread for its lifetime.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	tap := C.typrioCreateTap()
	if tap == C.CFMachPortRef(0) {
		ready <- fmt.Errorf("%w: event tap creation refused (grant Input Monitoring permission)", ErrHookDenied)
		return
	}

	source := C.CFMachPortCreateRunLoopSource(C.kCFAllocatorDefault, tap, 0)
	C.CFRunLoopAddSource(C.CFRunLoopGetCurrent(), source, C.kCFRunLoopCommonModes)
	C.CGEventTapEnable(tap, C.bool(true))

	h.emit = emit
	h.mu.Lock()
	h.tap = tap
	h.runLoop = C.CFRunLoopGetCurrent()
	h.mu.Unlock()

	tapMu.Lock()
	activeTap = h
	tapMu.Unlock()

	ready <- nil
	C.CFRunLoopRun()

	tapMu.Lock()
	activeTap = nil
	tapMu.Unlock()

	C.CFRunLoopRemoveSource(C.CFRunLoopGetCurrent(), source, C.kCFRunLoopCommonModes)
	C.CFRelease(C.CFTypeRef(source))
	C.CFRelease(C.CFTypeRef(tap))
}

func (h *cgTapHook) interrupt() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.tap != C.CFMachPortRef(0) {
		C.CGEventTapEnable(h.tap, C.bool(false))
		h.tap = C.CFMachPortRef(0)
	}
	if h.runLoop != C.CFRunLoopRef(0) {
		C.CFRunLoopStop(h.runLoop)
		h.runLoop = C.CFRunLoopRef(0)
	}
}

func modifiersFromFlags(flags uint64) keys.Modifier {
	var mods keys.Modifier
	if flags&cgFlagShift != 0 {
		mods |= keys.Shift
	}
	if flags&cgFlagControl != 0 {
		mods |= keys.Ctrl
	}
	if flags&cgFlagAlternate != 0 {
		mods |= keys.Alt
	}
	if flags&cgFlagCommand != 0 {
		mods |= keys.Super
	}
	if flags&cgFlagAlphaShift != 0 {
		mods |= keys.CapsLock
	}
	return mods
}

//export typrioTapCallback
func typrioTapCallback(proxy C.CGEventTapProxy, eventType C.CGEventType, event C.CGEventRef, refcon unsafe.Pointer) C.CGEventRef {
	tapMu.Lock()
	h := activeTap
	tapMu.Unlock()
	if h == nil {
		return event
	}

	code := uint16(C.CGEventGetIntegerValueField(event, C.kCGKeyboardEventKeycode))
	flags := uint64(C.CGEventGetFlags(event))
	k := keycode.Lookup(code)
	mods := modifiersFromFlags(flags)

	switch eventType {
	case C.kCGEventKeyDown, C.kCGEventKeyUp:
		h.emit(Event{
			Codepoint: rune(uint32(C.typrioUnicode(event))),
			Key:       k,
			Mods:      mods,
			Pressed:   eventType == C.kCGEventKeyDown,
			Raw:       uint32(code),
		})
	case C.kCGEventFlagsChanged:
		// A modifier transition: pressed iff its bit is now set.
		m := k.Modifier()
		if m == keys.None {
			break
		}
		h.emit(Event{
			Key:     k,
			Mods:    mods,
			Pressed: mods.Has(m),
			Raw:     uint32(code),
		})
	}
	return event
}
