// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X src.clint.sh/pkg/buildinfo.Var=value" to "go build".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"src.clint.sh/pkg/prog"
)

// Version identifies the version of clint. On development commits, it
// identifies the next release.
const Version = "v0.1.0"

// VersionSuffix is appended to Version in the output of "clint -version" and
// "clint -buildinfo" to build the full version string.
var VersionSuffix = "-dev.unknown"

// Reproducible identifies whether the build is reproducible.
var Reproducible = "false"

// Info keeps the build information printed by -buildinfo.
type Info struct {
	Version      string `json:"version"`
	GoVersion    string `json:"goversion"`
	Reproducible bool   `json:"reproducible"`
}

// Value returns the build information of the running binary.
func Value() Info {
	return Info{
		Version:      Version + VersionSuffix,
		GoVersion:    runtime.Version(),
		Reproducible: Reproducible == "true",
	}
}

// Program is the buildinfo subprogram. It only runs when -version or
// -buildinfo is given.
var Program prog.Program = program{}

type program struct{}

func (program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	if !f.Version && !f.BuildInfo {
		return prog.ErrNotSuitable
	}
	info := Value()
	switch {
	case f.Version && f.JSON:
		fmt.Fprintln(fds[1], mustToJSON(info.Version))
	case f.Version:
		fmt.Fprintln(fds[1], info.Version)
	case f.JSON:
		fmt.Fprintln(fds[1], mustToJSON(info))
	default:
		fmt.Fprintln(fds[1], "Version:", info.Version)
		fmt.Fprintln(fds[1], "Go version:", info.GoVersion)
		fmt.Fprintln(fds[1], "Reproducible build:", info.Reproducible)
	}
	return nil
}

func mustToJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
