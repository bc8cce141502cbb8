// Package config loads tracker settings from ~/.cc-todo-tracker/config.toml.
// A missing file yields the built-in defaults; the tracker never requires
// configuration to run.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the tunable settings of the tracker.
type Config struct {
	// TodosDir overrides the snapshot directory (default ~/.claude/todos).
	TodosDir string `toml:"todos_dir"`
	// ProjectsDir overrides the project index directory
	// (default ~/.claude/projects).
	ProjectsDir string `toml:"projects_dir"`
	// CurrentFile overrides the live snapshot path
	// (default ~/.claude/todos/current-todos.json).
	CurrentFile string `toml:"current_file"`

	// ProjectSort selects project ordering: "name", "recent" or "todos".
	ProjectSort string `toml:"project_sort"`
	// SessionLimit bounds how many recent snapshot files are shown.
	SessionLimit int `toml:"session_limit"`

	// ForceRefreshSeconds is the interval after which a full redraw is
	// forced even without a file change.
	ForceRefreshSeconds int `toml:"force_refresh_seconds"`
	// DebounceMillis is the minimum gap between two non-forced redraws.
	DebounceMillis int `toml:"debounce_millis"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ProjectSort:         "recent",
		SessionLimit:        20,
		ForceRefreshSeconds: 30,
		DebounceMillis:      1000,
	}
}

// Path returns the config file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cc-todo-tracker", "config.toml"), nil
}

// Load reads the config file, applying defaults for anything unset. A
// missing file is not an error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a specific config file.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}

	home, _ := os.UserHomeDir()
	cfg.TodosDir = expandHome(cfg.TodosDir, home)
	cfg.ProjectsDir = expandHome(cfg.ProjectsDir, home)
	cfg.CurrentFile = expandHome(cfg.CurrentFile, home)

	if cfg.SessionLimit <= 0 {
		cfg.SessionLimit = Default().SessionLimit
	}
	if cfg.ForceRefreshSeconds <= 0 {
		cfg.ForceRefreshSeconds = Default().ForceRefreshSeconds
	}
	if cfg.DebounceMillis <= 0 {
		cfg.DebounceMillis = Default().DebounceMillis
	}
	return cfg, nil
}

// ForceRefresh returns the forced-refresh interval as a duration.
func (c Config) ForceRefresh() time.Duration {
	return time.Duration(c.ForceRefreshSeconds) * time.Second
}

// Debounce returns the debounce window as a duration.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMillis) * time.Millisecond
}

// expandHome rewrites a leading ~/ to the home directory.
func expandHome(path, home string) string {
	if home != "" && strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
