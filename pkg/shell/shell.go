// Package shell is the entry point for the terminal interface of clint.
package shell

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"src.clint.sh/pkg/cli/histutil"
	"src.clint.sh/pkg/cli/term"
	"src.clint.sh/pkg/logutil"
	"src.clint.sh/pkg/prog"
	"src.clint.sh/pkg/rc"
	"src.clint.sh/pkg/store"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram. It always runs.
type Program struct{}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 0 && !f.CodeInArg {
		return prog.BadUsage("arguments are only accepted with -c")
	}
	if f.CodeInArg && len(args) == 0 {
		return prog.BadUsage("-c needs a command")
	}

	cfg := loadRC(fds[2], f)
	if f.Log == "" && cfg.Log != "" {
		if err := logutil.SetOutputFile(cfg.Log); err != nil {
			fmt.Fprintln(fds[2], "Warning:", err)
		} else {
			defer logutil.SetOutputFile("")
		}
	}

	hist, closeHistory := openHistory(fds[2], f, cfg)
	defer closeHistory()

	if f.CodeInArg {
		d := newDispatcher(fds[1], term.NewFileMetrics(fds[1]), hist, nil)
		if d.Execute(args) != 0 {
			return nil
		}
		return prog.Exit(1)
	}
	return Interact(fds, &InteractConfig{Prompt: cfg.Prompt, Store: hist})
}

// Reads the rc file selected by the flags. Problems are reported as warnings
// and the defaults are used.
func loadRC(stderr io.Writer, f *prog.Flags) rc.Config {
	if f.NoRc {
		return rc.Default()
	}
	path := f.RC
	if path == "" {
		var err error
		path, err = rc.Path()
		if err != nil {
			fmt.Fprintln(stderr, "Warning:", err)
			return rc.Default()
		}
	}
	cfg, err := rc.Load(path)
	if err != nil {
		fmt.Fprintln(stderr, "Warning:", err)
	}
	logger.Debug("rc loaded", "path", path, "config", cfg)
	return cfg
}

// Opens the history, backed by the database unless persistence is disabled.
// Failing to open the database is not fatal; the history is then kept in
// memory only. The returned function closes the database.
func openHistory(stderr io.Writer, f *prog.Flags, cfg rc.Config) (*histutil.Store, func()) {
	nop := func() {}
	if f.NoDB || !cfg.History.Persist {
		return histutil.NewMemStore(), nop
	}
	path, err := dbPath(f, cfg)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0700)
	}
	var db store.DBStore
	if err == nil {
		db, err = store.NewStore(path)
	}
	var hist *histutil.Store
	if err == nil {
		hist, err = histutil.NewStore(db)
		if err != nil {
			db.Close()
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, "Warning: cannot open history database:", err)
		fmt.Fprintln(stderr, "History will not be saved.")
		return histutil.NewMemStore(), nop
	}
	return hist, func() {
		if err := db.Close(); err != nil {
			logger.Error("cannot close history database", "err", err)
			fmt.Fprintln(stderr, "Warning: cannot close history database:", err)
		}
	}
}

func dbPath(f *prog.Flags, cfg rc.Config) (string, error) {
	if f.DB != "" {
		return f.DB, nil
	}
	if cfg.History.DB != "" {
		return cfg.History.DB, nil
	}
	return rc.DefaultDBPath()
}
