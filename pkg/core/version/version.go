// ============================================================================
// precalc - Precise chained arithmetic
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Name is the program name used in version output
	Name = "precalc"

	// Library is the version of the arithmetic engine (foundation/utils/mathx)
	Library = "0.3.0"

	// CLI is the version of the precalc command
	CLI = "0.2.0"
)

// Build metadata, overridden with -ldflags "-X ..." at release time
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "mathx", "library":
		return Library
	default:
		return CLI
	}
}

// String returns the one-line version banner
func String() string {
	return fmt.Sprintf("%s v%s (mathx v%s)", Name, CLI, Library)
}

// Details returns the banner followed by build and runtime information
func Details() string {
	return fmt.Sprintf("%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s/%s\n",
		String(), GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
