//go:build darwin && !cgo

package listener

// Pure-Go shim when building on macOS without cgo: event taps need
// CoreGraphics, so installation always fails.

func newPlatformHook() hook { return stubHook{} }
