// Package source reads Claude Code todo snapshot files from disk and
// turns them into session records. The external hook writer may be
// mid-write at any moment, so every per-file failure is a skip, never an
// error for the whole pass.
package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/todo"
)

const (
	// sessionFileMarker separates the session id from the agent id in a
	// snapshot filename: <fullSessionId>-agent-<agentId>.json.
	sessionFileMarker = "-agent-"

	// minSnapshotBytes is the placeholder-write threshold: files at or
	// below this size ("[]", "null", empty) have no todos yet.
	minSnapshotBytes = 10

	// DefaultSessionLimit bounds how many of the most recently modified
	// snapshot files are read per pass. A bound on display size, not
	// correctness.
	DefaultSessionLimit = 20
)

// CurrentSession is the live-session snapshot written on every todo
// change, shaped as an object rather than a bare array.
type CurrentSession struct {
	Timestamp   string      `json:"timestamp"`
	SessionID   string      `json:"session_id"`
	Cwd         string      `json:"cwd"`
	Todos       []todo.Todo `json:"todos"`
	LastUpdated string      `json:"last_updated"`
}

// SessionID extracts the full session id from a snapshot filename, or
// ok=false when the name does not follow the snapshot naming scheme.
func SessionID(filename string) (string, bool) {
	base := strings.TrimSuffix(filepath.Base(filename), ".json")
	idx := strings.Index(base, sessionFileMarker)
	if idx <= 0 {
		return "", false
	}
	id := base[:idx]
	// Snapshot ids are UUIDs; anything else in the directory (the live
	// snapshot file, editor droppings) is not a session file.
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// LoadSnapshots reads the most recently modified snapshot files in dir,
// up to limit, and parses each into a session. A missing directory yields
// zero sessions. Unreadable or unparseable files are skipped.
func LoadSnapshots(dir string, limit int) ([]*todo.Session, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read todos directory: %w", err)
	}
	if limit <= 0 {
		limit = DefaultSessionLimit
	}

	type candidate struct {
		fullID  string
		path    string
		modTime time.Time
	}
	var candidates []candidate
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		fullID, ok := SessionID(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.Size() <= minSnapshotBytes {
			continue
		}
		candidates = append(candidates, candidate{
			fullID:  fullID,
			path:    filepath.Join(dir, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].modTime.After(candidates[j].modTime)
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	var sessions []*todo.Session
	for _, c := range candidates {
		todos, err := readTodoArray(c.path)
		if err != nil {
			continue // mid-write or corrupt, expected
		}
		sessions = append(sessions, &todo.Session{
			ID:           todo.ShortID(c.fullID),
			FullID:       c.fullID,
			Todos:        todos,
			LastModified: c.modTime,
			SourceFile:   c.path,
		})
	}
	return sessions, nil
}

// LoadCurrent reads the live-session snapshot file. A missing file is
// reported as (nil, nil); a corrupt one as an error the caller may treat
// as a skip.
func LoadCurrent(path string) (*CurrentSession, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read current session file: %w", err)
	}
	if len(data) <= minSnapshotBytes {
		return nil, nil
	}
	var cur CurrentSession
	if err := json.Unmarshal(data, &cur); err != nil {
		return nil, fmt.Errorf("unmarshal current session file: %w", err)
	}
	return &cur, nil
}

// readTodoArray parses a bare JSON array of todos. "null" decodes to an
// empty list.
func readTodoArray(path string) ([]todo.Todo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var todos []todo.Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}
