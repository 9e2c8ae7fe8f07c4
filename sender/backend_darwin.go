//go:build darwin && cgo

package sender

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>

static bool axTrusted(bool prompt) {
	if (!prompt) {
		return AXIsProcessTrusted();
	}
	const void *keys[] = { kAXTrustedCheckOptionPrompt };
	const void *values[] = { kCFBooleanTrue };
	CFDictionaryRef opts = CFDictionaryCreate(kCFAllocatorDefault, keys, values, 1,
		&kCFTypeDictionaryKeyCallBacks, &kCFTypeDictionaryValueCallBacks);
	bool ok = AXIsProcessTrustedWithOptions(opts);
	CFRelease(opts);
	return ok;
}

static bool postKey(CGEventSourceRef src, CGKeyCode code, bool down) {
	CGEventRef ev = CGEventCreateKeyboardEvent(src, code, down);
	if (!ev) {
		return false;
	}
	CGEventPost(kCGHIDEventTap, ev);
	CFRelease(ev);
	return true;
}

static bool postUnicode(CGEventSourceRef src, const UniChar *chars, int len) {
	CGEventRef down = CGEventCreateKeyboardEvent(src, 0, true);
	if (!down) {
		return false;
	}
	CGEventKeyboardSetUnicodeString(down, len, chars);
	CGEventPost(kCGHIDEventTap, down);
	CFRelease(down);

	CGEventRef up = CGEventCreateKeyboardEvent(src, 0, false);
	if (!up) {
		return false;
	}
	CGEventKeyboardSetUnicodeString(up, len, chars);
	CGEventPost(kCGHIDEventTap, up);
	CFRelease(up);
	return true;
}
*/
import "C"

import (
	"fmt"
	"log/slog"
	"unicode/utf16"
	"unsafe"

	"typrio/internal/keycode"
	"typrio/keys"
)

// cgBackend posts synthetic keyboard events into the HID event tap via
// CoreGraphics. Injection works without Accessibility trust on current
// macOS, but most consumers pair it with a Listener that does need it,
// so the capability snapshot reports the trust state.
type cgBackend struct {
	src     C.CGEventSourceRef
	codes   map[keys.Key]uint16
	trusted bool
}

func newPlatformBackend() backend {
	b := &cgBackend{codes: keycode.Table()}
	b.src = C.CGEventSourceCreate(C.kCGEventSourceStateHIDSystemState)
	if b.src == C.CGEventSourceRef(0) {
		slog.Error("sender: CGEventSourceCreate failed")
	}
	b.trusted = bool(C.axTrusted(C.bool(false)))
	slog.Debug("sender: cgevent backend initialized", "trusted", b.trusted, "keymap_entries", len(b.codes))
	return b
}

func (b *cgBackend) ready() bool { return b.src != C.CGEventSourceRef(0) }

func (b *cgBackend) backendType() BackendType { return MacCGEvent }

func (b *cgBackend) capabilities() Capabilities {
	return Capabilities{
		CanInjectKeys:          b.src != C.CGEventSourceRef(0),
		CanInjectText:          b.src != C.CGEventSourceRef(0),
		NeedsAccessibilityPerm: !b.trusted,
	}
}

func (b *cgBackend) requestPermissions() bool {
	// Shows the system Accessibility prompt if the process is not yet
	// trusted; returns when the OS resolves it.
	b.trusted = bool(C.axTrusted(C.bool(true)))
	return b.ready()
}

func (b *cgBackend) sendKey(k keys.Key, down bool) error {
	if b.src == C.CGEventSourceRef(0) {
		return ErrNotReady
	}
	code, ok := b.codes[k]
	if !ok {
		return fmt.Errorf("key %s: %w", k, ErrUnmappedKey)
	}
	if !bool(C.postKey(b.src, C.CGKeyCode(code), C.bool(down))) {
		return fmt.Errorf("cgevent post failed for key %s (code=%d)", k, code)
	}
	return nil
}

// unicodeChunk bounds CGEventKeyboardSetUnicodeString payloads; the API
// silently truncates longer strings.
const unicodeChunk = 20

func (b *cgBackend) typeText(text string) error {
	if b.src == C.CGEventSourceRef(0) {
		return ErrNotReady
	}
	units := utf16.Encode([]rune(text))
	for start := 0; start < len(units); start += unicodeChunk {
		end := start + unicodeChunk
		if end > len(units) {
			end = len(units)
		}
		chunk := units[start:end]
		if !bool(C.postUnicode(b.src, (*C.UniChar)(unsafe.Pointer(&chunk[0])), C.int(len(chunk)))) {
			return fmt.Errorf("cgevent unicode post failed at offset %d", start)
		}
	}
	return nil
}

func (b *cgBackend) typeCharacter(cp rune) error {
	return b.typeText(string(cp))
}

func (b *cgBackend) flush() {}

func (b *cgBackend) close() {
	if b.src != C.CGEventSourceRef(0) {
		C.CFRelease(C.CFTypeRef(b.src))
		b.src = C.CGEventSourceRef(0)
	}
}
