package claudedir

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolver maps a session id back to the real path of its owning project
// by scanning the flattened project-index directories for a file that
// carries the session id as a name prefix.
//
// When the same session id matches files in more than one project
// directory the first match wins. The on-disk format specifies no
// resolution order for that case, so the result is non-deterministic
// across runs rather than tie-broken here.
type Resolver struct {
	projectsDir string
}

// NewResolver creates a resolver over the given projects directory. When
// dir is empty the default ~/.claude/projects location is used.
func NewResolver(dir string) (*Resolver, error) {
	if dir == "" {
		var err error
		dir, err = ProjectsDir()
		if err != nil {
			return nil, err
		}
	}
	return &Resolver{projectsDir: dir}, nil
}

// Resolve returns the real filesystem path of the project owning the
// session, or ok=false when no project directory contains a file named
// with the session id prefix.
func (r *Resolver) Resolve(fullSessionID string) (path string, ok bool) {
	if fullSessionID == "" {
		return "", false
	}

	entries, err := os.ReadDir(r.projectsDir)
	if err != nil {
		return "", false
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		files, err := os.ReadDir(filepath.Join(r.projectsDir, entry.Name()))
		if err != nil {
			continue
		}
		for _, f := range files {
			if strings.HasPrefix(f.Name(), fullSessionID) {
				return Unflatten(entry.Name()), true
			}
		}
	}
	return "", false
}
