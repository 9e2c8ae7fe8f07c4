package main

import (
	"sync"
	"testing"
)

func TestRegistryPutGetRemove(t *testing.T) {
	r := newRegistry()

	a := r.put("a")
	b := r.put("b")
	if a == 0 || b == 0 {
		t.Fatal("0 must never be handed out as an id")
	}
	if a == b {
		t.Fatal("ids must be distinct")
	}

	if obj, ok := r.get(a); !ok || obj != "a" {
		t.Fatalf("get(a) = %v, %v", obj, ok)
	}

	if obj, ok := r.remove(a); !ok || obj != "a" {
		t.Fatalf("remove(a) = %v, %v", obj, ok)
	}
	if _, ok := r.get(a); ok {
		t.Fatal("removed id still resolves")
	}
	if _, ok := r.remove(a); ok {
		t.Fatal("double remove reported success")
	}

	if obj, ok := r.get(b); !ok || obj != "b" {
		t.Fatalf("get(b) = %v, %v", obj, ok)
	}
}

func TestRegistryUnknownId(t *testing.T) {
	r := newRegistry()
	if _, ok := r.get(0); ok {
		t.Fatal("id 0 resolved")
	}
	if _, ok := r.get(42); ok {
		t.Fatal("unissued id resolved")
	}
}

func TestRegistryIdsNotReused(t *testing.T) {
	r := newRegistry()
	a := r.put("a")
	r.remove(a)
	if b := r.put("b"); b == a {
		t.Fatal("id was reused after removal")
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := newRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id := r.put(j)
				if _, ok := r.get(id); !ok {
					t.Error("fresh id did not resolve")
					return
				}
				r.remove(id)
			}
		}()
	}
	wg.Wait()
}
