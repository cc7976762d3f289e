// ============================================================================
// mathemascii - AsciiMath to MathML
// ============================================================================
//
// Package:     version
// Description: Version information for the CLI and the services
// Author:      mathemascii authors
// Created:     2026-10-04
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Release of the command line tool and the services
	Release = "0.1.0"

	// API is the version prefix of the HTTP and gRPC interfaces
	API = "v1"
)

// Commit and BuildDate are set at build time with -ldflags -X
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Release   string `json:"release" yaml:"release"`
	API       string `json:"api" yaml:"api"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the version information
func Get() Info {
	return Info{
		Release:   Release,
		API:       API,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("mathemascii %s (api %s, commit %s, built %s, %s %s)",
		i.Release, i.API, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
