// Package version describes the running countyq build.
package version

import (
	"fmt"
	"io"
	"runtime"

	goversion "github.com/hashicorp/go-version"
)

// Stamped at link time with
// -ldflags "-X github.com/satishbabariya/countyq/internal/version.version=1.0.0".
var (
	version = "0.1.0"
	commit  = "unknown"
	date    = "unknown"
)

// Build identifies one countyq binary.
type Build struct {
	Version string
	Commit  string
	Date    string
}

// Current returns the build stamped into this binary.
func Current() Build {
	return Build{Version: version, Commit: commit, Date: date}
}

// Semver parses the build version. Development builds stamped with a
// non-semantic version return an error.
func (b Build) Semver() (*goversion.Version, error) {
	v, err := goversion.NewSemver(b.Version)
	if err != nil {
		return nil, fmt.Errorf("invalid version format: %w", err)
	}
	return v, nil
}

// Release reports whether the version is semantic and has no pre-release part.
func (b Build) Release() bool {
	v, err := b.Semver()
	return err == nil && v.Prerelease() == ""
}

// Short is the one-line form printed by --version.
func (b Build) Short() string {
	if b.Commit == "unknown" {
		return b.Version
	}
	return fmt.Sprintf("%s (%s)", b.Version, b.Commit)
}

// Write prints the build details, the Go runtime and the semver status to w.
func (b Build) Write(w io.Writer) error {
	status := "not a semantic version"
	if v, err := b.Semver(); err == nil {
		status = v.String() + " (release)"
		if !b.Release() {
			status = fmt.Sprintf("%s (pre-release %s)", v, v.Prerelease())
		}
	}

	_, err := fmt.Fprintf(w, "countyq %s\n  commit:  %s\n  built:   %s\n  go:      %s %s/%s\n  semver:  %s\n",
		b.Version, b.Commit, b.Date, runtime.Version(), runtime.GOOS, runtime.GOARCH, status)
	return err
}
