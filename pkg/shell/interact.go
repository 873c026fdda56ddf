package shell

import (
	"fmt"
	"io"
	"os"
	"strings"

	"src.clint.sh/pkg/cli"
	"src.clint.sh/pkg/cli/histutil"
	"src.clint.sh/pkg/cli/term"
	"src.clint.sh/pkg/errutil"
	"src.clint.sh/pkg/sys"
)

// InteractConfig keeps configuration for the interactive mode.
type InteractConfig struct {
	// Prompt of the editor; empty means cli.DefaultPrompt.
	Prompt string
	Store  *histutil.Store
}

// Interact runs an interactive session until the input ends or the exit
// command is run. When stdin is a terminal it is put into raw mode for the
// duration of the session; otherwise lines are read without any editing.
func Interact(fds [3]*os.File, cfg *InteractConfig) error {
	if cfg.Prompt == "" {
		cfg.Prompt = cli.DefaultPrompt
	}
	if cfg.Store == nil {
		cfg.Store = histutil.NewMemStore()
	}
	if sys.IsATTY(fds[0].Fd()) {
		return interactTTY(fds, cfg)
	}
	return interactMin(fds, cfg)
}

func interactTTY(fds [3]*os.File, cfg *InteractConfig) (err error) {
	rm, err := term.Acquire(fds[0])
	if err != nil {
		return err
	}
	stopWatching := watchSignals(rm.Release, fds[2])
	defer func() {
		stopWatching()
		if restoreErr := rm.Release(); restoreErr != nil {
			logger.Error("cannot restore terminal", "err", restoreErr)
			if err != nil {
				err = errutil.Multi(err, restoreErr)
			} else {
				fmt.Fprintln(fds[2], "Warning: cannot restore terminal:", restoreErr)
			}
		}
	}()

	metrics := term.NewFileMetrics(fds[1])
	var ed *cli.Editor
	d := newDispatcher(fds[1], metrics, cfg.Store, func() { ed.Stop() })
	ed = cli.NewEditor(cli.EditorConfig{
		In: fds[0], Out: fds[1], Metrics: metrics,
		Prompt: cfg.Prompt, Store: cfg.Store, Dispatcher: d,
	})
	if err := ed.Run(); err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	return nil
}

func interactMin(fds [3]*os.File, cfg *InteractConfig) error {
	stopped := false
	d := newDispatcher(fds[1], term.NewFileMetrics(fds[1]), cfg.Store,
		func() { stopped = true })
	ed := newMinEditor(fds[0], fds[2], cfg.Prompt)
	for !stopped {
		line, err := ed.ReadLine()
		if err != nil && err != io.EOF {
			return fmt.Errorf("read input: %w", err)
		}
		if tokens := strings.Fields(line); len(tokens) > 0 {
			status := d.Execute(tokens)
			if err := cfg.Store.Append(line, status); err != nil {
				logger.Error("cannot save command to history", "err", err)
			}
		}
		if err == io.EOF {
			break
		}
	}
	return nil
}
