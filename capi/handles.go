package main

import (
	"sync"
	"unsafe"
)

// registry maps small opaque ids to live Go objects so handles crossing
// the C boundary never carry Go pointers. Ids are never reused; 0 is the
// invalid handle.
type registry struct {
	mu   sync.Mutex
	next uintptr
	objs map[uintptr]any
}

// ptrFor renders a registry id as the opaque pointer value handed to C.
// Ids are small integers, never real addresses.
func ptrFor(id uintptr) unsafe.Pointer {
	return unsafe.Pointer(id)
}

func newRegistry() *registry {
	return &registry{next: 1, objs: make(map[uintptr]any)}
}

func (r *registry) put(obj any) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.next
	r.next++
	r.objs[id] = obj
	return id
}

func (r *registry) get(id uintptr) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	obj, ok := r.objs[id]
	return obj, ok
}

// remove unregisters id and returns the object so the caller can release
// its resources. Removing an unknown id returns nil, false.
func (r *registry) remove(id uintptr) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	obj, ok := r.objs[id]
	if ok {
		delete(r.objs, id)
	}
	return obj, ok
}
