package main

import (
	"strings"
	"testing"
)

func TestInvalidHandleLookupNamesArgument(t *testing.T) {
	clearLastError()
	if _, ok := senderFrom(nil); ok {
		t.Fatal("nil sender handle resolved")
	}
	if msg := lastError(); !strings.Contains(msg, "sender") {
		t.Fatalf("last error %q does not name the sender argument", msg)
	}

	clearLastError()
	if _, ok := listenerFrom(nil); ok {
		t.Fatal("nil listener handle resolved")
	}
	if msg := lastError(); !strings.Contains(msg, "listener") {
		t.Fatalf("last error %q does not name the listener argument", msg)
	}
}

func TestHandleTypeMismatchRejected(t *testing.T) {
	id := handles.put("not a sender")
	defer handles.remove(id)

	clearLastError()
	if _, ok := senderFrom(ptrFor(id)); ok {
		t.Fatal("foreign object resolved as a sender")
	}
	if msg := lastError(); !strings.Contains(msg, "sender") {
		t.Fatalf("last error %q does not name the sender argument", msg)
	}
}
