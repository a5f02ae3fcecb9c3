// Package buildinfo carries the version stamped into diamondplot binaries.
//
// Values are injected with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/diamondplot/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/diamondplot/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/diamondplot/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

// Name is the program name used in version output and generated artifacts.
const Name = "diamondplot"

var (
	Version = "dev"     // semantic version, e.g. "v0.3.0"
	Commit  = "none"    // git commit SHA
	Date    = "unknown" // build timestamp
)

// Generator identifies the producer of rendered charts, e.g. "diamondplot v0.3.0".
// Sinks embed it in SVG comments and JSON metadata.
func Generator() string {
	return Name + " " + Version
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
