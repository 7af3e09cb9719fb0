// Package buildinfo holds the version string compiled into the cmd/
// binaries. It has no bearing on the wire format — ShellLinkHeader's
// reserved spans stay zero regardless of what this package reports.
package buildinfo

import "fmt"

// Version is overridden at build time via -ldflags, e.g.
// -X github.com/captain-woof/lnk-manipulator/internal/buildinfo.Version=v1.2.3.
var Version = "dev"

// UserAgent returns a short identifier string, "lnk-manipulator/" followed
// by Version. It is never written to a .lnk file.
func UserAgent() string {
	return fmt.Sprintf("lnk-manipulator/%s", Version)
}
