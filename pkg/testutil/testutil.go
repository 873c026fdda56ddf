// Package testutil contains common test utilities.
package testutil

import (
	"os"
	"path/filepath"
)

// Cleanuper wraps the Cleanup method. It is a subset of [testing.TB], thus
// satisfied by [*testing.T] and [*testing.B].
type Cleanuper interface {
	Cleanup(func())
}

// Must panics if err is not nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 panics if err is not nil, and returns v otherwise.
func Must1[T any](v T, err error) T {
	Must(err)
	return v
}

// MustPipe wraps os.Pipe. Both ends are closed when the test finishes.
func MustPipe(c Cleanuper) (*os.File, *os.File) {
	r, w, err := os.Pipe()
	Must(err)
	c.Cleanup(func() {
		r.Close()
		w.Close()
	})
	return r, w
}

// TempDir creates a temporary directory with symlinks resolved, and removes it
// when the test finishes.
func TempDir(c Cleanuper) string {
	dir := Must1(os.MkdirTemp("", "clinttest"))
	dir = Must1(filepath.EvalSymlinks(dir))
	c.Cleanup(func() {
		os.RemoveAll(dir)
	})
	return dir
}

// WriteFile writes data to a file, after creating all ancestor directories that
// don't exist.
func WriteFile(filename, data string) {
	Must(os.MkdirAll(filepath.Dir(filename), 0700))
	Must(os.WriteFile(filename, []byte(data), 0600))
}

// Setenv sets the value of an environment variable for the duration of a test.
// It returns value.
func Setenv(c Cleanuper, name, value string) string {
	SaveEnv(c, name)
	os.Setenv(name, value)
	return value
}

// Unsetenv unsets an environment variable for the duration of a test.
func Unsetenv(c Cleanuper, name string) {
	SaveEnv(c, name)
	os.Unsetenv(name)
}

// SaveEnv saves the current value of an environment variable so that it will be
// restored after a test has finished.
func SaveEnv(c Cleanuper, name string) {
	oldValue, existed := os.LookupEnv(name)
	if existed {
		c.Cleanup(func() { os.Setenv(name, oldValue) })
	} else {
		c.Cleanup(func() { os.Unsetenv(name) })
	}
}
