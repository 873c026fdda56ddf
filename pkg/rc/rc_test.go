package rc

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.clint.sh/pkg/testutil"
)

var loadTests = []struct {
	name    string
	content string
	want    Config
}{
	{
		name:    "empty file",
		content: "",
		want:    Default(),
	},
	{
		name:    "prompt only",
		content: "prompt: '$ '\n",
		want:    Config{Prompt: "$ ", History: History{Persist: true}},
	},
	{
		name: "everything",
		content: "prompt: '> '\n" +
			"history:\n  db: /tmp/h.db\n  persist: false\n" +
			"log: /tmp/clint.log\n",
		want: Config{
			Prompt:  "> ",
			History: History{DB: "/tmp/h.db", Persist: false},
			Log:     "/tmp/clint.log",
		},
	},
	{
		name:    "history db without persist",
		content: "history:\n  db: h.db\n",
		want:    Config{History: History{DB: "h.db", Persist: true}},
	},
}

func TestLoad(t *testing.T) {
	dir := testutil.TempDir(t)
	for i, test := range loadTests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(dir, "rc"+string(rune('a'+i))+".yaml")
			testutil.WriteFile(path, test.content)
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load -> error %v", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Load (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	got, err := Load(filepath.Join(testutil.TempDir(t), "nonexistent.yaml"))
	if err != nil {
		t.Errorf("Load -> error %v, want nil", err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("Load (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := testutil.TempDir(t)
	for name, content := range map[string]string{
		"unknown.yaml": "colour: red\n",
		"bad.yaml":     "prompt: [\n",
		"type.yaml":    "history: 42\n",
	} {
		path := filepath.Join(dir, name)
		testutil.WriteFile(path, content)
		got, err := Load(path)
		if err == nil {
			t.Errorf("Load %s -> nil error", name)
		} else if !strings.Contains(err.Error(), path) {
			t.Errorf("Load %s -> error %q, want it to name the file", name, err)
		}
		if diff := cmp.Diff(Default(), got); diff != "" {
			t.Errorf("Load %s returns non-default config (-want +got):\n%s", name, diff)
		}
	}
}

func TestPath(t *testing.T) {
	testutil.Setenv(t, "XDG_CONFIG_HOME", "/config-home")
	got, err := Path()
	if want := "/config-home/clint/rc.yaml"; got != want || err != nil {
		t.Errorf("Path() = (%q, %v), want (%q, nil)", got, err, want)
	}

	testutil.Unsetenv(t, "XDG_CONFIG_HOME")
	testutil.Setenv(t, "HOME", "/home/u")
	got, err = Path()
	if want := "/home/u/.config/clint/rc.yaml"; got != want || err != nil {
		t.Errorf("Path() = (%q, %v), want (%q, nil)", got, err, want)
	}

	testutil.Setenv(t, "XDG_CONFIG_HOME", "relative")
	if _, err := Path(); err == nil {
		t.Errorf("Path() with relative XDG_CONFIG_HOME -> nil error")
	}
}

func TestDefaultDBPath(t *testing.T) {
	testutil.Setenv(t, "XDG_STATE_HOME", "/state-home")
	got, err := DefaultDBPath()
	if want := "/state-home/clint/history.db"; got != want || err != nil {
		t.Errorf("DefaultDBPath() = (%q, %v), want (%q, nil)", got, err, want)
	}

	testutil.Unsetenv(t, "XDG_STATE_HOME")
	testutil.Setenv(t, "HOME", "/home/u")
	got, err = DefaultDBPath()
	if want := "/home/u/.local/state/clint/history.db"; got != want || err != nil {
		t.Errorf("DefaultDBPath() = (%q, %v), want (%q, nil)", got, err, want)
	}
}
