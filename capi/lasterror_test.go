package main

import "testing"

func TestLastErrorSlot(t *testing.T) {
	clearLastError()
	if got := lastError(); got != "" {
		t.Fatalf("fresh slot = %q, want empty", got)
	}

	setLastError("device open failed")
	if got := lastError(); got != "device open failed" {
		t.Fatalf("lastError = %q", got)
	}

	setLastError("second failure")
	if got := lastError(); got != "second failure" {
		t.Fatalf("slot did not overwrite: %q", got)
	}

	clearLastError()
	if got := lastError(); got != "" {
		t.Fatalf("slot not cleared: %q", got)
	}
}
