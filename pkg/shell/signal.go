package shell

import (
	"fmt"
	"io"
	"os"
	"os/signal"
)

var osExit = os.Exit

// Starts watching for signals that end the process. On such a signal, the
// terminal is restored by calling release and the process exits. The
// returned function stops watching.
func watchSignals(release func() error, stderr io.Writer) func() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, exitSignals...)
	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigCh:
			logger.Info("exiting on signal", "signal", sig)
			if err := release(); err != nil {
				fmt.Fprintln(stderr, "Warning: cannot restore terminal:", err)
			}
			osExit(signalStatus(sig))
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
