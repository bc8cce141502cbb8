// Package aggregate merges the per-session snapshot files and the live
// session file into a sorted, per-project view ready for rendering.
package aggregate

import (
	"log"
	"os"
	"time"

	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/claudedir"
	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/source"
	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/todo"
)

// Snapshot is the result of one aggregation pass: projects in display
// order, each with sorted sessions and todos, plus global stats.
type Snapshot struct {
	Projects  []*todo.Project
	Stats     todo.Stats
	Generated time.Time
}

// SessionCount returns the number of sessions across all projects.
func (s *Snapshot) SessionCount() int {
	n := 0
	for _, p := range s.Projects {
		n += len(p.Sessions)
	}
	return n
}

// Aggregator reads session snapshots from disk and groups them by
// project. It holds no state between passes; every call to Aggregate
// rebuilds the view from the current on-disk content.
type Aggregator struct {
	todosDir    string
	currentPath string
	resolver    *claudedir.Resolver
	limit       int
	sortMode    todo.ProjectSortMode
}

// New creates an aggregator over the given locations. Empty todosDir or
// currentPath fall back to the well-known ~/.claude locations.
func New(todosDir, currentPath string, resolver *claudedir.Resolver, limit int, sortMode todo.ProjectSortMode) (*Aggregator, error) {
	if todosDir == "" {
		var err error
		todosDir, err = claudedir.TodosDir()
		if err != nil {
			return nil, err
		}
	}
	if currentPath == "" {
		var err error
		currentPath, err = claudedir.CurrentTodosPath()
		if err != nil {
			return nil, err
		}
	}
	return &Aggregator{
		todosDir:    todosDir,
		currentPath: currentPath,
		resolver:    resolver,
		limit:       limit,
		sortMode:    sortMode,
	}, nil
}

// Aggregate performs one full pass: read, resolve, group, merge, sort.
func (a *Aggregator) Aggregate() *Snapshot {
	byPath := make(map[string]*todo.Project)
	project := func(path string) *todo.Project {
		p, ok := byPath[path]
		if !ok {
			p = todo.NewProject(path)
			byPath[path] = p
		}
		return p
	}

	sessions, err := source.LoadSnapshots(a.todosDir, a.limit)
	if err != nil {
		log.Printf("[AGGREGATE] snapshot scan failed: %v", err)
	}
	for _, s := range sessions {
		path, ok := a.resolver.Resolve(s.FullID)
		if !ok {
			path = todo.UnknownProjectLabel
		}
		project(path).AddSession(s)
	}

	if cur := a.loadCurrent(); cur != nil {
		project(a.currentProjectPath(cur)).AddSession(a.currentSession(cur))
	}

	snap := &Snapshot{Generated: time.Now()}
	for _, p := range byPath {
		for _, s := range p.Sessions {
			todo.SortTodos(s.Todos)
			snap.Stats.Merge(todo.CollectStats(s.Todos))
		}
		snap.Projects = append(snap.Projects, p)
	}
	todo.SortProjects(snap.Projects, a.sortMode)
	return snap
}

// loadCurrent reads the live-session file, treating corruption as absence.
func (a *Aggregator) loadCurrent() *source.CurrentSession {
	cur, err := source.LoadCurrent(a.currentPath)
	if err != nil {
		log.Printf("[AGGREGATE] current session file skipped: %v", err)
		return nil
	}
	return cur
}

// currentProjectPath decides which project the live session belongs to:
// the resolved project of its session id when the id is indexed, the
// file's own cwd otherwise, and the fixed live-session label as the last
// resort. Resolving by id first lets the live session land in the same
// project as its persisted snapshot so the two merge.
func (a *Aggregator) currentProjectPath(cur *source.CurrentSession) string {
	if path, ok := a.resolver.Resolve(cur.SessionID); ok {
		return path
	}
	if cur.Cwd != "" {
		return cur.Cwd
	}
	return todo.CurrentSessionLabel
}

// currentSession converts the live-session file into a session record.
func (a *Aggregator) currentSession(cur *source.CurrentSession) *todo.Session {
	modified := time.Now()
	if info, err := os.Stat(a.currentPath); err == nil {
		modified = info.ModTime()
	} else if ts, err := time.Parse(time.RFC3339, cur.Timestamp); err == nil {
		modified = ts
	}
	return &todo.Session{
		ID:           todo.ShortID(cur.SessionID),
		FullID:       cur.SessionID,
		Todos:        cur.Todos,
		LastModified: modified,
		SourceFile:   a.currentPath,
	}
}
