//go:build windows

package listener

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"typrio/internal/keycode"
	"typrio/keys"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSetWindowsHookEx    = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procGetMessage          = user32.NewProc("GetMessageW")
	procPostThreadMessage   = user32.NewProc("PostThreadMessageW")
	procToUnicode           = user32.NewProc("ToUnicode")
	procMapVirtualKey       = user32.NewProc("MapVirtualKeyW")

	kernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procGetCurrentThreadId = kernel32.NewProc("GetCurrentThreadId")
)

const (
	whKeyboardLL = 13

	wmKeyDown    = 0x0100
	wmKeyUp      = 0x0101
	wmSysKeyDown = 0x0104
	wmSysKeyUp   = 0x0105
	wmQuit       = 0x0012

	mapvkVkToVsc = 0

	vkShift   = 0x10
	vkControl = 0x11
	vkMenu    = 0x12
)

type kbdllHookStruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type msg struct {
	Hwnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      struct{ X, Y int32 }
}

// The low-level hook procedure is a process-global callback, so the
// active hook instance lives in a package-level slot (set while the
// message loop is running).
var (
	llMu     sync.Mutex
	activeLL *llHook

	hookProc = syscall.NewCallback(keyboardProc)
)

// llHook observes keyboard activity through a WH_KEYBOARD_LL hook fed by
// a dedicated message loop thread.
type llHook struct {
	emit     func(Event)
	mods     keys.Modifier
	threadID atomic.Uint32
	handle   uintptr
}

func newPlatformHook() hook {
	return &llHook{}
}

func (h *llHook) run(emit func(Event), ready chan<- error) {
	// The hook and its message loop must share one OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	handle, _, err := procSetWindowsHookEx.Call(whKeyboardLL, hookProc, 0, 0)
	if handle == 0 {
		ready <- fmt.Errorf("%w: SetWindowsHookEx: %v", ErrHookDenied, err)
		return
	}
	h.handle = handle
	h.emit = emit

	tid, _, _ := procGetCurrentThreadId.Call()
	h.threadID.Store(uint32(tid))

	llMu.Lock()
	activeLL = h
	llMu.Unlock()

	ready <- nil
	slog.Debug("listener: low-level keyboard hook installed")

	var m msg
	for {
		ret, _, _ := procGetMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if ret == 0 || int32(ret) == -1 {
			break
		}
	}

	llMu.Lock()
	activeLL = nil
	llMu.Unlock()

	procUnhookWindowsHookEx.Call(handle)
	h.handle = 0
}

func (h *llHook) interrupt() {
	if tid := h.threadID.Load(); tid != 0 {
		procPostThreadMessage.Call(uintptr(tid), wmQuit, 0, 0)
	}
}

// keyboardProc runs on the message loop thread for every global key
// event.
func keyboardProc(nCode int, wParam uintptr, lParam uintptr) uintptr {
	if nCode >= 0 {
		llMu.Lock()
		h := activeLL
		llMu.Unlock()
		if h != nil {
			kb := (*kbdllHookStruct)(unsafe.Pointer(lParam))
			h.handleKey(wParam, kb)
		}
	}
	ret, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
	return ret
}

func (h *llHook) handleKey(wParam uintptr, kb *kbdllHookStruct) {
	var pressed bool
	switch wParam {
	case wmKeyDown, wmSysKeyDown:
		pressed = true
	case wmKeyUp, wmSysKeyUp:
		pressed = false
	default:
		return
	}

	k := keycode.Lookup(uint16(kb.VkCode))
	if m := k.Modifier(); m != keys.None {
		if pressed {
			h.mods |= m
		} else {
			h.mods = h.mods.Without(m)
		}
	}

	h.emit(Event{
		Codepoint: h.codepoint(kb, pressed),
		Key:       k,
		Mods:      h.mods,
		Pressed:   pressed,
		Raw:       kb.VkCode,
	})
}

// codepoint translates the virtual key into the character it would
// produce under the currently tracked modifier state. Only press events
// are translated; ToUnicode mutates dead-key state when called on
// releases.
func (h *llHook) codepoint(kb *kbdllHookStruct, pressed bool) rune {
	if !pressed {
		return 0
	}
	var state [256]byte
	if h.mods.Has(keys.Shift) {
		state[vkShift] = 0x80
	}
	if h.mods.Has(keys.Ctrl) {
		state[vkControl] = 0x80
	}
	if h.mods.Has(keys.Alt) {
		state[vkMenu] = 0x80
	}

	scan := kb.ScanCode
	if scan == 0 {
		s, _, _ := procMapVirtualKey.Call(uintptr(kb.VkCode), mapvkVkToVsc)
		scan = uint32(s)
	}

	var buf [4]uint16
	n, _, _ := procToUnicode.Call(
		uintptr(kb.VkCode),
		uintptr(scan),
		uintptr(unsafe.Pointer(&state[0])),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		0,
	)
	if int32(n) <= 0 {
		return 0
	}
	return rune(buf[0])
}
