package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Cleanuper wraps the Cleanup method of [testing.TB].
type Cleanuper interface {
	Cleanup(func())
}

// MustGetTempStore returns a Store backed by a file in a temporary directory.
// The Store is closed and the directory removed when the test finishes.
func MustGetTempStore(c Cleanuper) DBStore {
	dir, err := os.MkdirTemp("", "clint.test")
	if err != nil {
		panic(fmt.Sprintf("failed to create temp dir: %v", err))
	}
	st, err := NewStore(filepath.Join(dir, "db"))
	if err != nil {
		os.RemoveAll(dir)
		panic(fmt.Sprintf("failed to create Store instance: %v", err))
	}
	c.Cleanup(func() {
		st.Close()
		if err := os.RemoveAll(dir); err != nil {
			fmt.Fprintln(os.Stderr, "failed to remove temp dir:", err)
		}
	})
	return st
}
