//go:build unix

package testutil

import (
	"os"

	"github.com/creack/pty"
)

// Skipper wraps the Skipf method. It is a subset of [testing.TB].
type Skipper interface {
	Skipf(format string, args ...any)
}

// PtyTB is the subset of [testing.TB] needed by MustOpenPty.
type PtyTB interface {
	Cleanuper
	Skipper
}

// MustOpenPty opens a pseudo terminal pair, skipping the test if the system
// cannot provide one. Both ends are closed when the test finishes.
func MustOpenPty(tb PtyTB) (ptmx, tty *os.File) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		tb.Skipf("cannot open pty: %v", err)
	}
	tb.Cleanup(func() {
		tty.Close()
		ptmx.Close()
	})
	return ptmx, tty
}
