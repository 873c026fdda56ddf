//go:build linux || solaris || darwin || dragonfly || freebsd || netbsd || openbsd

package eunix

import (
	"golang.org/x/sys/unix"
)

// Termios represents terminal attributes.
type Termios unix.Termios

// TermiosForFd returns the terminal attributes of the given file descriptor.
func TermiosForFd(fd int) (*Termios, error) {
	term, err := unix.IoctlGetTermios(fd, getAttrIOCTL)
	return (*Termios)(term), err
}

// ApplyToFd applies term to the given file descriptor, discarding any input
// that has not been read yet.
func (term *Termios) ApplyToFd(fd int) error {
	return unix.IoctlSetTermios(fd, setAttrFlushIOCTL, (*unix.Termios)(term))
}

// Copy returns a copy of term.
func (term *Termios) Copy() *Termios {
	v := *term
	return &v
}

// SetVMin sets the minimal number of bytes a read waits for.
func (term *Termios) SetVMin(v uint8) {
	term.Cc[unix.VMIN] = v
}

// SetVTime sets the read timeout in tenths of a second; 0 disables it.
func (term *Termios) SetVTime(v uint8) {
	term.Cc[unix.VTIME] = v
}

func setFlag[T uint32 | uint64](flag *T, mask T, v bool) {
	if v {
		*flag |= mask
	} else {
		*flag &^= mask
	}
}

// SetICanon sets the canonical flag.
func (term *Termios) SetICanon(v bool) {
	setFlag(&term.Lflag, unix.ICANON, v)
}

// SetEcho sets the echo flag.
func (term *Termios) SetEcho(v bool) {
	setFlag(&term.Lflag, unix.ECHO, v)
}

// SetIXON sets the flag for software (XON/XOFF) output flow control.
func (term *Termios) SetIXON(v bool) {
	setFlag(&term.Iflag, unix.IXON, v)
}

// ICanon reports whether canonical mode is on.
func (term *Termios) ICanon() bool { return term.Lflag&unix.ICANON != 0 }

// Echo reports whether input echo is on.
func (term *Termios) Echo() bool { return term.Lflag&unix.ECHO != 0 }

// IXON reports whether software flow control is on.
func (term *Termios) IXON() bool { return term.Iflag&unix.IXON != 0 }
