package listener

import (
	"errors"
	"sync"
	"testing"
	"time"

	"typrio/keys"
)

// fakeHook pumps a scripted event sequence and honors interrupt.
type fakeHook struct {
	installErr error
	events     []Event

	mu          sync.Mutex
	interrupted chan struct{}
	once        sync.Once
	emit        func(Event)
}

func newFakeHook() *fakeHook {
	return &fakeHook{interrupted: make(chan struct{})}
}

func (h *fakeHook) run(emit func(Event), ready chan<- error) {
	if h.installErr != nil {
		ready <- h.installErr
		return
	}
	h.mu.Lock()
	h.emit = emit
	h.mu.Unlock()
	ready <- nil
	for _, ev := range h.events {
		emit(ev)
	}
	<-h.interrupted
}

func (h *fakeHook) interrupt() {
	h.once.Do(func() { close(h.interrupted) })
}

// inject delivers an event as if the OS hook had produced it. Valid only
// after run has signalled ready.
func (h *fakeHook) inject(ev Event) {
	h.mu.Lock()
	emit := h.emit
	h.mu.Unlock()
	if emit != nil {
		emit(ev)
	}
}

func newTestListener(h hook) *Listener {
	l := New()
	l.hookFactory = func() hook { return h }
	return l
}

func TestStartRejectsNilCallback(t *testing.T) {
	l := newTestListener(newFakeHook())
	if err := l.Start(nil); !errors.Is(err, ErrNilCallback) {
		t.Fatalf("Start(nil) = %v, want ErrNilCallback", err)
	}
	if l.IsListening() {
		t.Fatal("listener running after rejected Start")
	}
}

func TestStartRejectsWhenAlreadyListening(t *testing.T) {
	h := newFakeHook()
	l := newTestListener(h)
	if err := l.Start(func(Event) {}); err != nil {
		t.Fatalf("first Start: %v", err)
	}
	defer l.Stop()

	if err := l.Start(func(Event) {}); !errors.Is(err, ErrAlreadyListening) {
		t.Fatalf("second Start = %v, want ErrAlreadyListening", err)
	}
}

func TestStartReportsHookInstallFailure(t *testing.T) {
	h := newFakeHook()
	h.installErr = ErrHookDenied
	l := newTestListener(h)

	err := l.Start(func(Event) {})
	if !errors.Is(err, ErrHookDenied) {
		t.Fatalf("Start = %v, want ErrHookDenied", err)
	}
	if l.IsListening() {
		t.Fatal("listener running after failed install")
	}
}

func TestEventsReachCallbackInOrder(t *testing.T) {
	h := newFakeHook()
	h.events = []Event{
		{Key: keys.A, Pressed: true, Codepoint: 'a'},
		{Key: keys.A, Pressed: false},
	}

	var mu sync.Mutex
	var got []Event
	seen := make(chan struct{}, len(h.events))

	l := newTestListener(h)
	err := l.Start(func(ev Event) {
		mu.Lock()
		got = append(got, ev)
		mu.Unlock()
		seen <- struct{}{}
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer l.Stop()

	for range h.events {
		select {
		case <-seen:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for event delivery")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if !got[0].Pressed || got[0].Key != keys.A || got[0].Codepoint != 'a' {
		t.Fatalf("first event = %+v", got[0])
	}
	if got[1].Pressed {
		t.Fatalf("second event = %+v, want release", got[1])
	}
}

func TestStopJoinsAndSilencesCallback(t *testing.T) {
	h := newFakeHook()
	l := newTestListener(h)

	var mu sync.Mutex
	count := 0
	err := l.Start(func(Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	h.inject(Event{Key: keys.B, Pressed: true})
	l.Stop()
	if l.IsListening() {
		t.Fatal("listener still running after Stop")
	}

	mu.Lock()
	before := count
	mu.Unlock()

	// Deliveries after Stop must be dropped.
	h.inject(Event{Key: keys.B, Pressed: false})
	mu.Lock()
	after := count
	mu.Unlock()
	if after != before {
		t.Fatalf("callback ran after Stop: before=%d after=%d", before, after)
	}
}

func TestStopIsIdempotentAndSafeWhenIdle(t *testing.T) {
	l := newTestListener(newFakeHook())
	l.Stop()
	l.Stop()

	h := newFakeHook()
	l = newTestListener(h)
	if err := l.Start(func(Event) {}); err != nil {
		t.Fatalf("start: %v", err)
	}
	l.Stop()
	l.Stop()
}

func TestStopFromCallbackDoesNotDeadlock(t *testing.T) {
	h := newFakeHook()
	h.events = []Event{{Key: keys.Escape, Pressed: true}}
	l := newTestListener(h)

	stopped := make(chan struct{})
	err := l.Start(func(ev Event) {
		if ev.Key == keys.Escape {
			l.Stop()
			close(stopped)
		}
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop from callback deadlocked")
	}
	if l.IsListening() {
		t.Fatal("listener still running after Stop from callback")
	}
}

// laggedHook holds one buffered event back until the test releases it,
// modelling a hook goroutine still draining its queue after interrupt.
type laggedHook struct {
	interrupted chan struct{}
	once        sync.Once
	gate        chan struct{}
	drained     chan struct{}
}

func newLaggedHook() *laggedHook {
	return &laggedHook{
		interrupted: make(chan struct{}),
		gate:        make(chan struct{}),
		drained:     make(chan struct{}),
	}
}

func (h *laggedHook) run(emit func(Event), ready chan<- error) {
	ready <- nil
	emit(Event{Key: keys.Escape, Pressed: true})
	<-h.interrupted
	<-h.gate
	emit(Event{Key: keys.A, Pressed: true})
	close(h.drained)
}

func (h *laggedHook) interrupt() {
	h.once.Do(func() { close(h.interrupted) })
}

func TestStaleEventsDroppedAfterRestart(t *testing.T) {
	old := newLaggedHook()
	replacement := newFakeHook()
	hooks := []hook{old, replacement}
	i := 0

	l := New()
	l.hookFactory = func() hook {
		h := hooks[i]
		i++
		return h
	}

	var mu sync.Mutex
	oldCalls := 0
	stopped := make(chan struct{})
	err := l.Start(func(Event) {
		mu.Lock()
		oldCalls++
		mu.Unlock()
		l.Stop()
		close(stopped)
	})
	if err != nil {
		t.Fatalf("first start: %v", err)
	}
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("callback never ran")
	}

	if err := l.Start(func(Event) {}); err != nil {
		t.Fatalf("restart: %v", err)
	}
	defer l.Stop()

	// Release the old hook's buffered event now that a new session is
	// live; it must not reach the stopped callback.
	close(old.gate)
	select {
	case <-old.drained:
	case <-time.After(2 * time.Second):
		t.Fatal("old hook never drained")
	}

	mu.Lock()
	defer mu.Unlock()
	if oldCalls != 1 {
		t.Fatalf("stopped callback ran %d times, want 1", oldCalls)
	}
}

func TestRestartAfterStop(t *testing.T) {
	first := newFakeHook()
	second := newFakeHook()
	hooks := []*fakeHook{first, second}
	i := 0

	l := New()
	l.hookFactory = func() hook {
		h := hooks[i]
		i++
		return h
	}

	if err := l.Start(func(Event) {}); err != nil {
		t.Fatalf("first start: %v", err)
	}
	l.Stop()

	seen := make(chan Event, 1)
	if err := l.Start(func(ev Event) { seen <- ev }); err != nil {
		t.Fatalf("second start: %v", err)
	}
	defer l.Stop()

	second.inject(Event{Key: keys.C, Pressed: true})
	select {
	case ev := <-seen:
		if ev.Key != keys.C {
			t.Fatalf("event = %+v, want key C", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("restarted listener delivered no events")
	}
}
