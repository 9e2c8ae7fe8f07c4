//go:build darwin && !cgo

package sender

// Pure-Go shim when building on macOS without cgo. The backend is never
// ready; every emission fails with ErrNotReady.

func newPlatformBackend() backend { return stubBackend{} }
