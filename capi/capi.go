// Command capi exports the typr_io_* C ABI declared in typr_io.h. Build
// with -buildmode=c-shared or c-archive to produce a library callable
// from C and from foreign-language bindings.
package main

/*
#define TYPR_IO_IMPL
#include <stdlib.h>
#include "typr_io.h"
*/
import "C"

import (
	"sync"
	"unicode/utf8"
	"unsafe"

	"typrio/internal/buildinfo"
	"typrio/keys"
	"typrio/listener"
	"typrio/sender"
)

// handles keeps every live sender and listener reachable from C without
// handing Go pointers across the boundary.
var handles = newRegistry()

// cListener pairs a listener with the C callback registered on it.
type cListener struct {
	l    *listener.Listener
	mu   sync.Mutex
	cb   C.typr_io_listener_cb
	user unsafe.Pointer
}

func senderFrom(h unsafe.Pointer) (*sender.Sender, bool) {
	obj, ok := handles.get(uintptr(h))
	if !ok {
		setLastError("sender handle is invalid")
		return nil, false
	}
	s, ok := obj.(*sender.Sender)
	if !ok {
		setLastError("sender handle is invalid")
		return nil, false
	}
	return s, true
}

func listenerFrom(h unsafe.Pointer) (*cListener, bool) {
	obj, ok := handles.get(uintptr(h))
	if !ok {
		setLastError("listener handle is invalid")
		return nil, false
	}
	cl, ok := obj.(*cListener)
	if !ok {
		setLastError("listener handle is invalid")
		return nil, false
	}
	return cl, true
}

// report records err in the last-error slot and converts it to the
// ABI's boolean success convention.
func report(err error) C.bool {
	if err != nil {
		setLastError(err.Error())
		return false
	}
	return true
}

/* ---------------- Sender ---------------- */

//export typr_io_sender_create
func typr_io_sender_create() C.typr_io_sender_t {
	return C.typr_io_sender_t(ptrFor(handles.put(sender.New())))
}

//export typr_io_sender_destroy
func typr_io_sender_destroy(h C.typr_io_sender_t) {
	obj, ok := handles.remove(uintptr(unsafe.Pointer(h)))
	if !ok {
		return
	}
	if s, ok := obj.(*sender.Sender); ok {
		s.Close()
	}
}

//export typr_io_sender_is_ready
func typr_io_sender_is_ready(h C.typr_io_sender_t) C.bool {
	s, ok := senderFrom(unsafe.Pointer(h))
	if !ok {
		return false
	}
	return C.bool(s.Ready())
}

//export typr_io_sender_type
func typr_io_sender_type(h C.typr_io_sender_t) C.uint8_t {
	s, ok := senderFrom(unsafe.Pointer(h))
	if !ok {
		return C.uint8_t(sender.Unavailable)
	}
	return C.uint8_t(s.Type())
}

//export typr_io_sender_get_capabilities
func typr_io_sender_get_capabilities(h C.typr_io_sender_t, out *C.typr_io_capabilities_t) {
	if out == nil {
		setLastError("out_capabilities must not be NULL")
		return
	}
	*out = C.typr_io_capabilities_t{}
	s, ok := senderFrom(unsafe.Pointer(h))
	if !ok {
		return
	}
	caps := s.Capabilities()
	out.can_inject_keys = C.bool(caps.CanInjectKeys)
	out.can_inject_text = C.bool(caps.CanInjectText)
	out.can_simulate_hid = C.bool(caps.CanSimulateHID)
	out.supports_key_repeat = C.bool(caps.SupportsKeyRepeat)
	out.needs_accessibility_perm = C.bool(caps.NeedsAccessibilityPerm)
	out.needs_input_monitoring_perm = C.bool(caps.NeedsInputMonitoringPerm)
	out.needs_uinput_access = C.bool(caps.NeedsUinputAccess)
}

//export typr_io_sender_request_permissions
func typr_io_sender_request_permissions(h C.typr_io_sender_t) C.bool {
	s, ok := senderFrom(unsafe.Pointer(h))
	if !ok {
		return false
	}
	return C.bool(s.RequestPermissions())
}

//export typr_io_sender_key_down
func typr_io_sender_key_down(h C.typr_io_sender_t, key C.typr_io_key_t) C.bool {
	s, ok := senderFrom(unsafe.Pointer(h))
	if !ok {
		return false
	}
	return report(s.KeyDown(keys.Key(key)))
}

//export typr_io_sender_key_up
func typr_io_sender_key_up(h C.typr_io_sender_t, key C.typr_io_key_t) C.bool {
	s, ok := senderFrom(unsafe.Pointer(h))
	if !ok {
		return false
	}
	return report(s.KeyUp(keys.Key(key)))
}

//export typr_io_sender_tap
func typr_io_sender_tap(h C.typr_io_sender_t, key C.typr_io_key_t) C.bool {
	s, ok := senderFrom(unsafe.Pointer(h))
	if !ok {
		return false
	}
	return report(s.Tap(keys.Key(key)))
}

//export typr_io_sender_active_modifiers
func typr_io_sender_active_modifiers(h C.typr_io_sender_t) C.typr_io_modifier_t {
	s, ok := senderFrom(unsafe.Pointer(h))
	if !ok {
		return 0
	}
	return C.typr_io_modifier_t(s.ActiveModifiers())
}

//export typr_io_sender_hold_modifier
func typr_io_sender_hold_modifier(h C.typr_io_sender_t, mods C.typr_io_modifier_t) C.bool {
	s, ok := senderFrom(unsafe.Pointer(h))
	if !ok {
		return false
	}
	return report(s.HoldModifier(keys.Modifier(mods)))
}

//export typr_io_sender_release_modifier
func typr_io_sender_release_modifier(h C.typr_io_sender_t, mods C.typr_io_modifier_t) C.bool {
	s, ok := senderFrom(unsafe.Pointer(h))
	if !ok {
		return false
	}
	return report(s.ReleaseModifier(keys.Modifier(mods)))
}

//export typr_io_sender_release_all_modifiers
func typr_io_sender_release_all_modifiers(h C.typr_io_sender_t) C.bool {
	s, ok := senderFrom(unsafe.Pointer(h))
	if !ok {
		return false
	}
	return report(s.ReleaseAllModifiers())
}

//export typr_io_sender_combo
func typr_io_sender_combo(h C.typr_io_sender_t, mods C.typr_io_modifier_t, key C.typr_io_key_t) C.bool {
	s, ok := senderFrom(unsafe.Pointer(h))
	if !ok {
		return false
	}
	return report(s.Combo(keys.Modifier(mods), keys.Key(key)))
}

//export typr_io_sender_type_text_utf8
func typr_io_sender_type_text_utf8(h C.typr_io_sender_t, text *C.char) C.bool {
	s, ok := senderFrom(unsafe.Pointer(h))
	if !ok {
		return false
	}
	if text == nil {
		setLastError("utf8_text must not be NULL")
		return false
	}
	goText := C.GoString(text)
	if !utf8.ValidString(goText) {
		setLastError("utf8_text is not valid UTF-8")
		return false
	}
	return report(s.TypeText(goText))
}

//export typr_io_sender_type_character
func typr_io_sender_type_character(h C.typr_io_sender_t, codepoint C.uint32_t) C.bool {
	s, ok := senderFrom(unsafe.Pointer(h))
	if !ok {
		return false
	}
	if !utf8.ValidRune(rune(codepoint)) {
		setLastError("codepoint is not a valid Unicode scalar value")
		return false
	}
	return report(s.TypeCharacter(rune(codepoint)))
}

//export typr_io_sender_flush
func typr_io_sender_flush(h C.typr_io_sender_t) {
	if s, ok := senderFrom(unsafe.Pointer(h)); ok {
		s.Flush()
	}
}

//export typr_io_sender_set_key_delay
func typr_io_sender_set_key_delay(h C.typr_io_sender_t, delayUS C.uint32_t) {
	if s, ok := senderFrom(unsafe.Pointer(h)); ok {
		s.SetKeyDelay(uint32(delayUS))
	}
}

/* ---------------- Listener ---------------- */

//export typr_io_listener_create
func typr_io_listener_create() C.typr_io_listener_t {
	cl := &cListener{l: listener.New()}
	return C.typr_io_listener_t(ptrFor(handles.put(cl)))
}

//export typr_io_listener_destroy
func typr_io_listener_destroy(h C.typr_io_listener_t) {
	obj, ok := handles.remove(uintptr(unsafe.Pointer(h)))
	if !ok {
		return
	}
	if cl, ok := obj.(*cListener); ok {
		cl.l.Close()
	}
}

//export typr_io_listener_start
func typr_io_listener_start(h C.typr_io_listener_t, cb C.typr_io_listener_cb, user unsafe.Pointer) C.bool {
	cl, ok := listenerFrom(unsafe.Pointer(h))
	if !ok {
		return false
	}
	if cb == nil {
		setLastError("callback must not be NULL")
		return false
	}
	cl.mu.Lock()
	cl.cb = cb
	cl.user = user
	cl.mu.Unlock()
	err := cl.l.Start(func(ev listener.Event) {
		cl.mu.Lock()
		fn, data := cl.cb, cl.user
		cl.mu.Unlock()
		if fn != nil {
			invokeListenerCB(fn, ev, data)
		}
	})
	return report(err)
}

//export typr_io_listener_stop
func typr_io_listener_stop(h C.typr_io_listener_t) {
	cl, ok := listenerFrom(unsafe.Pointer(h))
	if !ok {
		return
	}
	cl.l.Stop()
	cl.mu.Lock()
	cl.cb = nil
	cl.user = nil
	cl.mu.Unlock()
}

//export typr_io_listener_is_listening
func typr_io_listener_is_listening(h C.typr_io_listener_t) C.bool {
	cl, ok := listenerFrom(unsafe.Pointer(h))
	if !ok {
		return false
	}
	return C.bool(cl.l.IsListening())
}

/* ---------------- Conversions and diagnostics ---------------- */

//export typr_io_key_to_string
func typr_io_key_to_string(key C.typr_io_key_t) *C.char {
	return C.CString(keys.Key(key).String())
}

//export typr_io_string_to_key
func typr_io_string_to_key(name *C.char) C.typr_io_key_t {
	if name == nil {
		return C.typr_io_key_t(keys.Unknown)
	}
	return C.typr_io_key_t(keys.Parse(C.GoString(name)))
}

var versionCStr = sync.OnceValue(func() *C.char {
	return C.CString(buildinfo.Version())
})

//export typr_io_library_version
func typr_io_library_version() *C.char {
	// Allocated once for the process lifetime; callers must not free it.
	return versionCStr()
}

//export typr_io_get_last_error
func typr_io_get_last_error() *C.char {
	msg := lastError()
	if msg == "" {
		return nil
	}
	return C.CString(msg)
}

//export typr_io_clear_last_error
func typr_io_clear_last_error() {
	clearLastError()
}

//export typr_io_free_string
func typr_io_free_string(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

// main is unused; the package exists to be built as a C library.
func main() {}
