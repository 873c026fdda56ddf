//go:build linux || solaris || darwin || dragonfly || freebsd || netbsd || openbsd

package term

import (
	"fmt"
	"os"

	"src.clint.sh/pkg/sys/eunix"
)

// Acquire captures the terminal configuration of f and switches it to raw
// mode: canonical input processing, echo and software flow control are
// turned off. Everything else, including signal generation and output
// post-processing, is left alone. If the configuration cannot be captured,
// the terminal is not modified.
func Acquire(f *os.File) (*RawMode, error) {
	// All fds pointing to the same terminal are equivalent; use the input.
	fd := int(f.Fd())
	term, err := eunix.TermiosForFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't get terminal attribute: %w", err)
	}
	saved := term.Copy()

	term.SetICanon(false)
	term.SetEcho(false)
	term.SetIXON(false)
	term.SetVMin(1)
	term.SetVTime(0)

	err = term.ApplyToFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't set up terminal attribute: %w", err)
	}
	logger.Debug("terminal in raw mode", "fd", fd)
	return &RawMode{restore: func() error { return saved.ApplyToFd(fd) }}, nil
}
