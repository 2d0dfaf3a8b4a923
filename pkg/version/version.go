// Package version exposes build metadata for the textify CLI.
package version

import (
	"fmt"
	"runtime"
)

// Populated at build time via -ldflags, e.g.
// go build -ldflags "-X 'github.com/frizadiga/textify/pkg/version.Version=1.2.3'"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info describes the running textify build.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get returns the build information for this binary.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the full build description on a single line.
func (i Info) String() string {
	return fmt.Sprintf("textify %s (%s, %s, %s, built %s)",
		i.Version, i.Commit, i.GoVersion, i.Platform, i.BuildTime)
}
