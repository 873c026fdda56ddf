package buildinfo

import (
	"fmt"
	"testing"

	. "src.clint.sh/pkg/prog/progtest"
)

func TestProgram(t *testing.T) {
	info := Value()
	Test(t, Program,
		ThatClint("-version").WritesStdout(info.Version+"\n"),
		ThatClint("-version", "-json").WritesStdout(mustToJSON(info.Version)+"\n"),

		ThatClint("-buildinfo").WritesStdout(
			fmt.Sprintf(
				"Version: %v\nGo version: %v\nReproducible build: %v\n",
				info.Version, info.GoVersion, info.Reproducible)),
		ThatClint("-buildinfo", "-json").WritesStdout(mustToJSON(info)+"\n"),

		ThatClint().ExitsWith(2).WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestValue(t *testing.T) {
	defer func(s string) { VersionSuffix = s }(VersionSuffix)
	VersionSuffix = "-test"
	if got := Value().Version; got != Version+"-test" {
		t.Errorf("Value().Version = %q, want %q", got, Version+"-test")
	}
}
