package todo

import (
	"path/filepath"
	"sort"
	"strings"
)

// ProjectSortMode selects how projects are ordered in the display.
type ProjectSortMode string

const (
	// SortByName orders projects lexicographically by the last path segment.
	SortByName ProjectSortMode = "name"
	// SortByRecent orders projects by their most recent session, newest first.
	SortByRecent ProjectSortMode = "recent"
	// SortByTodoCount orders projects by total todo count, largest first.
	SortByTodoCount ProjectSortMode = "todos"
)

// ParseProjectSortMode maps a config string to a sort mode, defaulting to
// SortByRecent for empty or unrecognized values.
func ParseProjectSortMode(s string) ProjectSortMode {
	switch ProjectSortMode(strings.ToLower(strings.TrimSpace(s))) {
	case SortByName:
		return SortByName
	case SortByTodoCount:
		return SortByTodoCount
	default:
		return SortByRecent
	}
}

// SortTodos orders todos by status rank (completed, in progress, pending).
// The sort is stable: equal-rank todos keep their snapshot order.
func SortTodos(todos []Todo) {
	sort.SliceStable(todos, func(i, j int) bool {
		return todos[i].Status.Rank() < todos[j].Status.Rank()
	})
}

// SortSessions orders sessions by last modification time, newest first.
func SortSessions(sessions []*Session) {
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].LastModified.After(sessions[j].LastModified)
	})
}

// SortProjects orders projects according to the given mode.
func SortProjects(projects []*Project, mode ProjectSortMode) {
	switch mode {
	case SortByName:
		sort.Slice(projects, func(i, j int) bool {
			return filepath.Base(projects[i].Path) < filepath.Base(projects[j].Path)
		})
	case SortByTodoCount:
		sort.Slice(projects, func(i, j int) bool {
			return projects[i].TodoCount() > projects[j].TodoCount()
		})
	default:
		sort.Slice(projects, func(i, j int) bool {
			return projects[i].LastModified().After(projects[j].LastModified())
		})
	}
}

// SortedSessions returns the project's sessions as a slice ordered newest
// first.
func (p *Project) SortedSessions() []*Session {
	sessions := make([]*Session, 0, len(p.Sessions))
	for _, s := range p.Sessions {
		sessions = append(sessions, s)
	}
	SortSessions(sessions)
	return sessions
}
