// Package claudedir locates the well-known Claude data directories and
// reverses the flattened project-directory naming scheme used under
// ~/.claude/projects.
package claudedir

import (
	"os"
	"path/filepath"
)

// CurrentTodosFile is the name of the live-session snapshot written on
// every todo change.
const CurrentTodosFile = "current-todos.json"

// Root returns the Claude data directory (~/.claude).
func Root() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".claude"), nil
}

// TodosDir returns the directory holding per-session todo snapshot files.
func TodosDir() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "todos"), nil
}

// ProjectsDir returns the directory of flattened per-project index
// directories.
func ProjectsDir() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "projects"), nil
}

// CurrentTodosPath returns the path of the live-session snapshot file.
func CurrentTodosPath() (string, error) {
	dir, err := TodosDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, CurrentTodosFile), nil
}
