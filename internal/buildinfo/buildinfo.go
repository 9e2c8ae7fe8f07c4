package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var version = "dev"

// SetVersion allows build scripts to override the reported version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// Version returns the semantic version or commit hash associated with the build.
func Version() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// String describes the library build, including toolchain and target.
func String() string {
	return fmt.Sprintf("typrio %s (%s/%s %s)", Version(), runtime.GOOS, runtime.GOARCH, runtime.Version())
}
