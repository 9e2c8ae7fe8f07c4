// Command typrio-probe exercises the injection and monitoring paths from
// the terminal: it prints the backend capabilities, optionally sends a
// tap, combo or text, and can watch global key events for a while.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"typrio/internal/buildinfo"
	"typrio/keys"
	"typrio/listener"
	"typrio/logging"
	"typrio/sender"
)

func main() {
	var (
		logLevel  = flag.String("log-level", "info", "log level (debug, info, warn, error)")
		logFormat = flag.String("log-format", "console", "log format (json, console)")
		showVer   = flag.Bool("version", false, "print version and exit")
		tapName   = flag.String("tap", "", "key name to tap (e.g. A, Enter, F5)")
		comboMods = flag.String("mods", "", "modifiers to hold for -tap, | separated (e.g. Ctrl|Shift)")
		text      = flag.String("text", "", "UTF-8 text to type")
		delayUS   = flag.Uint("delay-us", 1000, "inter-event delay in microseconds")
		listenFor = flag.Duration("listen", 0, "watch global key events for this duration (e.g. 10s)")
	)
	flag.Parse()

	if *showVer {
		fmt.Println(buildinfo.String())
		return
	}

	if _, err := logging.Install(logging.Options{Level: *logLevel, Format: *logFormat}); err != nil {
		fmt.Fprintln(os.Stderr, "typrio-probe:", err)
		os.Exit(2)
	}

	if err := run(*tapName, *comboMods, *text, uint32(*delayUS), *listenFor); err != nil {
		slog.Error("probe failed", "error", err)
		os.Exit(1)
	}
}

func run(tapName, comboMods, text string, delayUS uint32, listenFor time.Duration) error {
	s := sender.New()
	defer s.Close()

	caps := s.Capabilities()
	fmt.Printf("backend: %s  ready: %v\n", s.Type(), s.Ready())
	fmt.Printf("  inject keys: %v  inject text: %v  simulate hid: %v  key repeat: %v\n",
		caps.CanInjectKeys, caps.CanInjectText, caps.CanSimulateHID, caps.SupportsKeyRepeat)
	if caps.NeedsAccessibilityPerm || caps.NeedsInputMonitoringPerm || caps.NeedsUinputAccess {
		fmt.Printf("  needs: accessibility=%v input-monitoring=%v uinput=%v\n",
			caps.NeedsAccessibilityPerm, caps.NeedsInputMonitoringPerm, caps.NeedsUinputAccess)
	}

	if !s.Ready() {
		if s.RequestPermissions() {
			fmt.Println("permissions granted, backend ready")
		}
	}

	s.SetKeyDelay(delayUS)

	if tapName != "" {
		key := keys.Parse(tapName)
		if key == keys.Unknown {
			return fmt.Errorf("unknown key name %q", tapName)
		}
		mods, err := parseMods(comboMods)
		if err != nil {
			return err
		}
		if mods != keys.None {
			if err := s.Combo(mods, key); err != nil {
				return fmt.Errorf("combo %s+%s: %w", mods, key, err)
			}
		} else if err := s.Tap(key); err != nil {
			return fmt.Errorf("tap %s: %w", key, err)
		}
	}

	if text != "" {
		if err := s.TypeText(text); err != nil {
			return fmt.Errorf("type text: %w", err)
		}
	}

	if listenFor > 0 {
		return watch(listenFor)
	}
	return nil
}

func watch(d time.Duration) error {
	l := listener.New()
	err := l.Start(func(ev listener.Event) {
		state := "release"
		if ev.Pressed {
			state = "press"
		}
		if ev.Codepoint != 0 {
			fmt.Printf("%-7s %-14s mods=%-12s cp=%q\n", state, ev.Key, ev.Mods, ev.Codepoint)
		} else {
			fmt.Printf("%-7s %-14s mods=%s\n", state, ev.Key, ev.Mods)
		}
	})
	if err != nil {
		return fmt.Errorf("start listener: %w", err)
	}
	defer l.Stop()

	fmt.Printf("listening for %s...\n", d)
	time.Sleep(d)
	return nil
}

func parseMods(list string) (keys.Modifier, error) {
	mods := keys.None
	for _, part := range strings.Split(list, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch strings.ToLower(part) {
		case "shift":
			mods |= keys.Shift
		case "ctrl", "control":
			mods |= keys.Ctrl
		case "alt", "option":
			mods |= keys.Alt
		case "super", "cmd", "win", "meta":
			mods |= keys.Super
		case "capslock":
			mods |= keys.CapsLock
		case "numlock":
			mods |= keys.NumLock
		default:
			return keys.None, fmt.Errorf("unknown modifier %q", part)
		}
	}
	return mods, nil
}
