package sender

import "typrio/keys"

// stubBackend is the inert variant for platforms without an injection
// mechanism compiled in. It reports no capabilities and fails every
// emission without contacting the OS.
type stubBackend struct{}

func (stubBackend) ready() bool                  { return false }
func (stubBackend) backendType() BackendType     { return Unavailable }
func (stubBackend) capabilities() Capabilities   { return Capabilities{} }
func (stubBackend) requestPermissions() bool     { return false }
func (stubBackend) sendKey(keys.Key, bool) error { return ErrNotReady }
func (stubBackend) typeText(string) error        { return ErrTextUnsupported }
func (stubBackend) typeCharacter(rune) error     { return ErrTextUnsupported }
func (stubBackend) flush()                       {}
func (stubBackend) close()                       {}
