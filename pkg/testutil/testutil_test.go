package testutil

import (
	"os"
	"testing"
)

func TestTempDir_RemovedAfterTest(t *testing.T) {
	var cleanups []func()
	c := cleanuperFunc(func(f func()) { cleanups = append(cleanups, f) })

	dir := TempDir(c)
	if stat, err := os.Stat(dir); err != nil || !stat.IsDir() {
		t.Fatalf("TempDir returned %q, which is not a directory", dir)
	}
	for _, f := range cleanups {
		f()
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("temp dir still exists after cleanup")
	}
}

func TestSetenv_Restores(t *testing.T) {
	const name = "CLINT_TESTUTIL_VAR"
	os.Setenv(name, "old")
	defer os.Unsetenv(name)

	var cleanups []func()
	c := cleanuperFunc(func(f func()) { cleanups = append(cleanups, f) })
	Setenv(c, name, "new")
	if got := os.Getenv(name); got != "new" {
		t.Errorf("after Setenv: %q, want %q", got, "new")
	}
	for _, f := range cleanups {
		f()
	}
	if got := os.Getenv(name); got != "old" {
		t.Errorf("after cleanup: %q, want %q", got, "old")
	}
}

type cleanuperFunc func(func())

func (f cleanuperFunc) Cleanup(g func()) { f(g) }
