// Package listener observes global keyboard activity, independent of
// which process has focus. Each platform implements the hook mechanism
// in separate files guarded by build tags; normalized events are
// delivered through a callback on a dedicated background goroutine.
package listener

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"typrio/keys"
)

// Event is a normalized global keyboard event. Codepoint is 0 when the
// platform event carries no character (a bare modifier press, or a
// backend without character production). Raw preserves the native key
// code for callers that need it.
type Event struct {
	Codepoint rune
	Key       keys.Key
	Mods      keys.Modifier
	Pressed   bool
	Raw       uint32
}

// Callback receives events on the listener's background goroutine. It
// must be safe to call from that goroutine and should not block: a slow
// callback delays subsequent deliveries and Stop's join.
type Callback func(Event)

var (
	// ErrNilCallback is returned by Start when no callback is supplied.
	ErrNilCallback = errors.New("listener callback must not be nil")
	// ErrAlreadyListening is returned by Start on a Listening instance.
	ErrAlreadyListening = errors.New("listener already started")
	// ErrHookDenied reports that the OS refused the global hook, usually
	// for lack of permission.
	ErrHookDenied = errors.New("global input hook unavailable")
)

// hook is the platform-specific half of a Listener. run installs the OS
// hook, reports installation on ready, then pumps events through emit
// until interrupt is called. Exactly one implementation is compiled in
// per target.
type hook interface {
	run(emit func(Event), ready chan<- error)
	interrupt()
}

// Listener captures global keyboard input. It is either Idle or
// Listening; Start/Stop/IsListening are safe from any goroutine,
// including Stop from within the callback itself.
type Listener struct {
	mu      sync.Mutex
	sess    *session
	running bool

	// hookFactory overrides hook construction in tests.
	hookFactory func() hook
}

// session owns one hook installation. The stop flag and dispatch
// goroutine id live here rather than on the Listener so a hook
// goroutine that outlives a non-joining Stop can never deliver into a
// later session's callback.
type session struct {
	h       hook
	done    chan struct{}
	stopped atomic.Bool
	loopGID atomic.Uint64
}

func (l *Listener) newHook() hook {
	if l.hookFactory != nil {
		return l.hookFactory()
	}
	return newPlatformHook()
}

// New constructs an Idle listener. No OS resources are held until Start.
func New() *Listener {
	return &Listener{}
}

// Start installs the OS-level hook and begins delivering events to cb
// from a dedicated goroutine. It blocks only for hook installation; a
// denied hook or nil callback fails with no state change. Start on a
// Listening instance is rejected with ErrAlreadyListening.
func (l *Listener) Start(cb Callback) error {
	if cb == nil {
		return ErrNilCallback
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return ErrAlreadyListening
	}

	s := &session{h: l.newHook(), done: make(chan struct{})}
	ready := make(chan error, 1)

	go func() {
		defer close(s.done)
		s.loopGID.Store(goroutineID())
		s.h.run(func(ev Event) {
			// Re-check the stop signal before every delivery so no
			// callback runs after this session's Stop has returned.
			if s.stopped.Load() {
				return
			}
			cb(ev)
		}, ready)
	}()

	if err := <-ready; err != nil {
		<-s.done
		slog.Warn("listener: hook installation failed", "error", err)
		return fmt.Errorf("install hook: %w", err)
	}

	l.sess = s
	l.running = true
	slog.Info("listener: started")
	return nil
}

// Stop tears down the hook and waits for the background goroutine to
// exit, guaranteeing no callback invocation happens after it returns.
// Calling Stop from within the callback is safe: the join is skipped for
// the delivery goroutine itself, which can run no further callbacks once
// the stop signal is set. Stop on an Idle listener is a no-op.
func (l *Listener) Stop() {
	l.mu.Lock()
	s := l.sess
	wasRunning := l.running
	l.sess = nil
	l.running = false
	l.mu.Unlock()

	if s == nil {
		return
	}
	s.stopped.Store(true)
	s.h.interrupt()
	if goroutineID() != s.loopGID.Load() {
		<-s.done
	}
	if wasRunning {
		slog.Info("listener: stopped")
	}
}

// IsListening reports the current state.
func (l *Listener) IsListening() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Close stops the listener if it is running. A Listening instance is
// stopped before its resources are released.
func (l *Listener) Close() {
	l.Stop()
}

// goroutineID extracts the current goroutine's id from its stack header.
// Stop uses it to detect being called from the delivery goroutine.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := strings.Fields(string(buf[:n]))
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0
	}
	return id
}
