package main

/*
#define TYPR_IO_IMPL
#include "typr_io.h"

// Go cannot call a C function pointer directly; route the invocation
// through this trampoline.
static void typrioInvokeListenerCB(typr_io_listener_cb cb, uint32_t codepoint,
                                   typr_io_key_t key, typr_io_modifier_t mods,
                                   bool pressed, void *user_data) {
  cb(codepoint, key, mods, pressed, user_data);
}
*/
import "C"

import (
	"unsafe"

	"typrio/listener"
)

func invokeListenerCB(cb C.typr_io_listener_cb, ev listener.Event, user unsafe.Pointer) {
	C.typrioInvokeListenerCB(cb,
		C.uint32_t(ev.Codepoint),
		C.typr_io_key_t(ev.Key),
		C.typr_io_modifier_t(ev.Mods),
		C.bool(ev.Pressed),
		user)
}
