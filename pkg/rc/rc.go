// Package rc reads the rc file of clint.
package rc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config keeps settings read from the rc file.
type Config struct {
	Prompt  string  `yaml:"prompt"`
	History History `yaml:"history"`
	Log     string  `yaml:"log"`
}

// History keeps settings of the command history.
type History struct {
	// Path of the database. Empty means DefaultDBPath.
	DB      string `yaml:"db"`
	Persist bool   `yaml:"persist"`
}

// Default returns the settings used when there is no rc file.
func Default() Config {
	return Config{History: History{Persist: true}}
}

// Load reads the rc file at path. Settings missing from the file keep their
// default values. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read rc file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the default path of the rc file, $XDG_CONFIG_HOME/clint/rc.yaml
// or ~/.config/clint/rc.yaml.
func Path() (string, error) {
	dir, err := xdgDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "clint", "rc.yaml"), nil
}

// DefaultDBPath returns the default path of the history database,
// $XDG_STATE_HOME/clint/history.db or ~/.local/state/clint/history.db.
func DefaultDBPath() (string, error) {
	dir, err := xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "clint", "history.db"), nil
}

func xdgDir(envName, fallback string) (string, error) {
	if dir := os.Getenv(envName); dir != "" {
		if !filepath.IsAbs(dir) {
			return "", fmt.Errorf("%s is not absolute: %s", envName, dir)
		}
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, fallback), nil
}
