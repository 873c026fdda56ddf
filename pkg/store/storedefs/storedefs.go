// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// does not need to depend on the concrete implementation.
package storedefs

import "errors"

// ErrNoMatchingCmd is the error returned when a command with the requested
// sequence number does not exist.
var ErrNoMatchingCmd = errors.New("no matching command line")

// Store is an interface satisfied by the storage service.
type Store interface {
	NextCmdSeq() (int, error)
	AddCmd(text string, status int) (int, error)
	Cmd(seq int) (Cmd, error)
	CmdsWithSeq(from, upto int) ([]Cmd, error)
}

// Cmd is an entry in the command history, together with the status the
// dispatcher returned for it.
type Cmd struct {
	Text   string
	Status int
	Seq    int
}
