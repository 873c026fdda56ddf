// Package sys provides system utilities used by the terminal front end.
//
// The subpackage eunix provides access to Unix terminal attributes.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// WinSize queries the size of the terminal referenced by the given file. Both
// return values are -1 if the size cannot be determined.
func WinSize(file *os.File) (row, col int) { return winSize(file) }

// IsATTY determines whether the given file descriptor refers to a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
