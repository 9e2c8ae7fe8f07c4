package listener

import "fmt"

// stubHook is the inert variant for platforms without a global hook
// mechanism compiled in; installation always fails.
type stubHook struct{}

func (stubHook) run(_ func(Event), ready chan<- error) {
	ready <- fmt.Errorf("%w: no hook mechanism on this platform", ErrHookDenied)
}

func (stubHook) interrupt() {}
