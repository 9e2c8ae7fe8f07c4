//go:build linux && !x11

package listener

import (
	"fmt"
	"log/slog"
	"sync"

	evdev "github.com/gvalkov/golang-evdev"

	"typrio/internal/keycode"
	"typrio/keys"
)

// evdev key event values.
const (
	keyReleased = 0
	keyPressed  = 1
	keyRepeated = 2
)

type rawKey struct {
	code  uint16
	value int32
}

// evdevHook reads raw key events from every keyboard device under
// /dev/input. Requires read access to the device nodes (root or the
// input group). No character production exists at this layer, so
// Codepoint is always 0.
type evdevHook struct {
	mu      sync.Mutex
	devices []*evdev.InputDevice
	closed  bool
}

func newPlatformHook() hook {
	return &evdevHook{}
}

func (h *evdevHook) run(emit func(Event), ready chan<- error) {
	devices, err := evdev.ListInputDevices()
	if err != nil {
		ready <- fmt.Errorf("%w: enumerate /dev/input: %v", ErrHookDenied, err)
		return
	}

	var keyboards []*evdev.InputDevice
	for _, dev := range devices {
		if isKeyboard(dev) {
			keyboards = append(keyboards, dev)
		} else {
			dev.File.Close()
		}
	}
	if len(keyboards) == 0 {
		ready <- fmt.Errorf("%w: no readable keyboard device (add user to the 'input' group)", ErrHookDenied)
		return
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		for _, dev := range keyboards {
			dev.File.Close()
		}
		ready <- fmt.Errorf("%w: hook interrupted during installation", ErrHookDenied)
		return
	}
	h.devices = keyboards
	h.mu.Unlock()

	raw := make(chan rawKey, 100)
	var wg sync.WaitGroup
	for _, dev := range keyboards {
		wg.Add(1)
		go func(dev *evdev.InputDevice) {
			defer wg.Done()
			slog.Debug("listener: reading device", "path", dev.Fn, "name", dev.Name)
			for {
				ev, err := dev.ReadOne()
				if err != nil {
					return
				}
				if ev.Type != evdev.EV_KEY {
					continue
				}
				raw <- rawKey{code: ev.Code, value: ev.Value}
			}
		}(dev)
	}
	go func() {
		wg.Wait()
		close(raw)
	}()

	ready <- nil

	var mods keys.Modifier
	for rk := range raw {
		k := keycode.Lookup(rk.code)
		pressed := rk.value == keyPressed || rk.value == keyRepeated
		if m := k.Modifier(); m != keys.None && rk.value != keyRepeated {
			if pressed {
				mods |= m
			} else {
				mods = mods.Without(m)
			}
		}
		emit(Event{
			Key:     k,
			Mods:    mods,
			Pressed: pressed,
			Raw:     uint32(rk.code),
		})
	}
}

func (h *evdevHook) interrupt() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	// Closing the device files unblocks the blocked readers.
	for _, dev := range h.devices {
		dev.File.Close()
	}
	h.devices = nil
}

// isKeyboard reports whether the device exposes ordinary key events. A
// device advertising a space bar is treated as a keyboard; this skips
// mice, power buttons and lid switches that also carry EV_KEY.
func isKeyboard(dev *evdev.InputDevice) bool {
	for capType, codes := range dev.Capabilities {
		if capType.Type != evdev.EV_KEY {
			continue
		}
		for _, code := range codes {
			if code.Code == evdev.KEY_SPACE {
				return true
			}
		}
	}
	return false
}
