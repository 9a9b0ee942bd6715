// Package version provides build version information.
package version

import (
	"fmt"
	"runtime"
)

// These are set via ldflags at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info returns a one-line description of the build. Dev builds carry no
// meaningful build date, so it is left out for them.
func Info() string {
	commitShort := Commit
	if len(commitShort) > 7 {
		commitShort = commitShort[:7]
	}

	name := "hashcollide " + Short()
	if IsPrerelease() {
		name += " (pre-release)"
	}
	if IsDevBuild() {
		return fmt.Sprintf("%s (%s) built with %s", name, commitShort, runtime.Version())
	}
	return fmt.Sprintf(
		"%s (%s) built on %s with %s",
		name,
		commitShort,
		BuildDate,
		runtime.Version(),
	)
}

// Short returns the version number, normalized to vMAJOR.MINOR.PATCH form when
// it parses as semver.
func Short() string {
	if v := Parsed(); v != nil {
		return "v" + v.String()
	}
	return Version
}
