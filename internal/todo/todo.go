// Package todo defines the data model for Claude Code todo snapshots:
// individual todos, the sessions that own them, and the projects the
// sessions are grouped under. Everything here is rebuilt from disk on
// every aggregation pass; nothing carries identity across passes except
// the session id, which comes from the snapshot filename.
package todo

import "time"

// Status is the lifecycle state of a single todo item.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Rank maps a status to its sort position. Unrecognized values sort with
// pending so a schema change in the writer never breaks ordering.
func (s Status) Rank() int {
	switch s {
	case StatusCompleted:
		return 0
	case StatusInProgress:
		return 1
	default:
		return 2
	}
}

// Todo is a single task entry from a snapshot file. Only the fields this
// system consumes are declared; unknown JSON fields are ignored.
type Todo struct {
	Content    string `json:"content"`
	Status     Status `json:"status"`
	ActiveForm string `json:"activeForm,omitempty"`
}

// Display returns the text to show for this todo: the activeForm while the
// todo is in progress (when present), otherwise the content.
func (t Todo) Display() string {
	if t.Status == StatusInProgress && t.ActiveForm != "" {
		return t.ActiveForm
	}
	return t.Content
}

// Identity is the dedup key for a todo: two entries with the same content
// and status are the same todo.
type Identity struct {
	Content string
	Status  Status
}

// Identity returns the dedup key for this todo.
func (t Todo) Identity() Identity {
	return Identity{Content: t.Content, Status: t.Status}
}

// DisplayIDLength is the number of leading characters of a full session id
// shown in session listings.
const DisplayIDLength = 8

// Session is one work session's todo snapshot.
type Session struct {
	ID           string // full id truncated to DisplayIDLength
	FullID       string
	Todos        []Todo
	LastModified time.Time
	SourceFile   string
}

// ShortID truncates a full session id to DisplayIDLength characters.
func ShortID(fullID string) string {
	if len(fullID) > DisplayIDLength {
		return fullID[:DisplayIDLength]
	}
	return fullID
}

// Merge folds another snapshot of the same session into this one: todo
// lists are concatenated with duplicate (content, status) pairs removed,
// and LastModified becomes the later of the two.
func (s *Session) Merge(other *Session) {
	seen := make(map[Identity]bool, len(s.Todos))
	for _, t := range s.Todos {
		seen[t.Identity()] = true
	}
	for _, t := range other.Todos {
		if seen[t.Identity()] {
			continue
		}
		seen[t.Identity()] = true
		s.Todos = append(s.Todos, t)
	}
	if other.LastModified.After(s.LastModified) {
		s.LastModified = other.LastModified
	}
}

// Stats counts todos by status bucket.
type Stats struct {
	Completed int
	Active    int
	Pending   int
	Total     int
}

// Add counts one todo into the stats.
func (st *Stats) Add(t Todo) {
	st.Total++
	switch t.Status {
	case StatusCompleted:
		st.Completed++
	case StatusInProgress:
		st.Active++
	default:
		st.Pending++
	}
}

// Merge adds another stats bucket into this one.
func (st *Stats) Merge(other Stats) {
	st.Completed += other.Completed
	st.Active += other.Active
	st.Pending += other.Pending
	st.Total += other.Total
}

// CollectStats tallies a todo list.
func CollectStats(todos []Todo) Stats {
	var st Stats
	for _, t := range todos {
		st.Add(t)
	}
	return st
}

// Project labels used when a session cannot be mapped to a real path.
const (
	CurrentSessionLabel = "Current Session"
	UnknownProjectLabel = "(unknown project)"
)

// Project groups the sessions that belong to one working directory. Path
// is the resolved real path, UnknownProjectLabel when resolution failed,
// or CurrentSessionLabel for the live session pseudo-project.
type Project struct {
	Path     string
	Sessions map[string]*Session // keyed by short session id
}

// NewProject creates an empty project for the given path or label.
func NewProject(path string) *Project {
	return &Project{Path: path, Sessions: make(map[string]*Session)}
}

// AddSession inserts a session, merging it into an existing record when the
// project already holds one with the same id. This keeps the invariant of
// at most one session per (project, id) pair.
func (p *Project) AddSession(s *Session) {
	if existing, ok := p.Sessions[s.ID]; ok {
		existing.Merge(s)
		return
	}
	p.Sessions[s.ID] = s
}

// LastModified returns the most recent modification time across the
// project's sessions, or the zero time when the project is empty.
func (p *Project) LastModified() time.Time {
	var latest time.Time
	for _, s := range p.Sessions {
		if s.LastModified.After(latest) {
			latest = s.LastModified
		}
	}
	return latest
}

// TodoCount returns the total number of todos across all sessions.
func (p *Project) TodoCount() int {
	n := 0
	for _, s := range p.Sessions {
		n += len(s.Todos)
	}
	return n
}

// Stats tallies todos across all of the project's sessions.
func (p *Project) Stats() Stats {
	var st Stats
	for _, s := range p.Sessions {
		st.Merge(CollectStats(s.Todos))
	}
	return st
}
