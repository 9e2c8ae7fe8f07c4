package main

import "sync"

// lastErr is the process-wide last-error slot exposed through
// typr_io_get_last_error. An empty string means no error.
var lastErr struct {
	mu  sync.RWMutex
	msg string
}

func setLastError(msg string) {
	lastErr.mu.Lock()
	lastErr.msg = msg
	lastErr.mu.Unlock()
}

func lastError() string {
	lastErr.mu.RLock()
	defer lastErr.mu.RUnlock()
	return lastErr.msg
}

func clearLastError() {
	setLastError("")
}
