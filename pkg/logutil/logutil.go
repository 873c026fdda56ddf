// Package logutil provides loggers that share a common, redirectable output.
//
// Loggers are discarded by default; the -log flag points them at a file.
package logutil

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.Mutex
	out     io.Writer = io.Discard
	file    *os.File
	loggers []*log.Logger
)

// GetLogger gets a logger with the given prefix. By convention the prefix
// names the package in brackets, like "[cli] ".
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.NewWithOptions(out, log.Options{
		Prefix:          strings.TrimSpace(prefix),
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger,
// including those obtained in the future.
func SetOutput(newout io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	setOutput(newout)
	closeFile(nil)
}

// SetOutputFile redirects the output of all loggers to the named file,
// appending to it. An empty name discards the output.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	setOutput(f)
	closeFile(f)
	return nil
}

func setOutput(newout io.Writer) {
	out = newout
	for _, logger := range loggers {
		logger.SetOutput(newout)
	}
}

// Must be called with mu held.
func closeFile(newFile *os.File) {
	if file != nil {
		file.Close()
	}
	file = newFile
}
