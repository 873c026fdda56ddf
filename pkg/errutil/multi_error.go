// Package errutil contains utilities for working with errors.
package errutil

import "strings"

// Multi combines multiple errors into one. Nil errors are dropped; if none
// remain it returns nil, and if exactly one remains it is returned unchanged.
// Errors previously returned by Multi are flattened, so
//
//	Multi(Multi(err1, err2), err3)
//
// is equivalent to Multi(err1, err2, err3).
func Multi(errs ...error) error {
	var flat multiError
	for _, err := range errs {
		switch err := err.(type) {
		case nil:
		case multiError:
			flat = append(flat, err...)
		default:
			flat = append(flat, err)
		}
	}
	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	}
	return flat
}

type multiError []error

func (me multiError) Error() string {
	msgs := make([]string, len(me))
	for i, err := range me {
		msgs[i] = err.Error()
	}
	return "multiple errors: " + strings.Join(msgs, "; ")
}

// Unwrap makes the combined errors visible to errors.Is and errors.As.
func (me multiError) Unwrap() []error { return me }
