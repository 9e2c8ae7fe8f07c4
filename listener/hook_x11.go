//go:build linux && x11

package listener

import (
	"log/slog"
	"sync"

	hookev "github.com/robotn/gohook"

	"typrio/internal/keycode"
	"typrio/keys"
)

// x11Hook observes keyboard activity through the display server using
// gohook. X11 keycodes are evdev codes offset by 8.
type x11Hook struct {
	stop     chan struct{}
	stopOnce sync.Once
}

func newPlatformHook() hook {
	return &x11Hook{stop: make(chan struct{})}
}

func (h *x11Hook) run(emit func(Event), ready chan<- error) {
	events := hookev.Start()
	defer hookev.End()

	ready <- nil
	slog.Debug("listener: x11 hook pumping")

	var mods keys.Modifier
	for {
		select {
		case <-h.stop:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			var pressed, repeat bool
			switch ev.Kind {
			case hookev.KeyDown:
				pressed = true
			case hookev.KeyHold:
				pressed, repeat = true, true
			case hookev.KeyUp:
				pressed = false
			default:
				continue
			}

			k := keys.Unknown
			if ev.Rawcode >= 8 {
				k = keycode.Lookup(ev.Rawcode - 8)
			}
			if m := k.Modifier(); m != keys.None && !repeat {
				if pressed {
					mods |= m
				} else {
					mods = mods.Without(m)
				}
			}
			emit(Event{
				Codepoint: ev.Keychar,
				Key:       k,
				Mods:      mods,
				Pressed:   pressed,
				Raw:       uint32(ev.Rawcode),
			})
		}
	}
}

func (h *x11Hook) interrupt() {
	h.stopOnce.Do(func() { close(h.stop) })
}
