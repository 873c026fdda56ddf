//go:build !(linux || solaris || darwin || dragonfly || freebsd || netbsd || openbsd)

package term

import (
	"errors"
	"os"
)

// Acquire is not supported on this platform.
func Acquire(*os.File) (*RawMode, error) {
	return nil, errors.New("raw mode is not supported on this platform")
}
