package buildinfo

import (
	"strings"
	"testing"
)

func TestSetVersion(t *testing.T) {
	orig := version
	defer func() { version = orig }()

	SetVersion("")
	if version != orig {
		t.Fatal("empty SetVersion overwrote the version")
	}

	SetVersion("1.2.3")
	if got := Version(); got != "1.2.3" {
		t.Fatalf("Version = %q, want 1.2.3", got)
	}
}

func TestStringMentionsVersion(t *testing.T) {
	orig := version
	defer func() { version = orig }()

	SetVersion("9.9.9")
	s := String()
	if !strings.HasPrefix(s, "typrio 9.9.9") {
		t.Fatalf("String = %q", s)
	}
	if !strings.Contains(s, "/") {
		t.Fatalf("String lacks GOOS/GOARCH: %q", s)
	}
}
