package todo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortTodosOrdersByStatusRank(t *testing.T) {
	todos := []Todo{
		{Content: "p", Status: StatusPending},
		{Content: "i", Status: StatusInProgress},
		{Content: "c", Status: StatusCompleted},
	}
	SortTodos(todos)

	assert.Equal(t, StatusCompleted, todos[0].Status)
	assert.Equal(t, StatusInProgress, todos[1].Status)
	assert.Equal(t, StatusPending, todos[2].Status)
}

func TestSortTodosStable(t *testing.T) {
	todos := []Todo{
		{Content: "first pending", Status: StatusPending},
		{Content: "done", Status: StatusCompleted},
		{Content: "second pending", Status: StatusPending},
		{Content: "third pending", Status: StatusPending},
	}
	SortTodos(todos)
	once := make([]Todo, len(todos))
	copy(once, todos)

	// Sorting twice yields an identical sequence; ties keep insertion order.
	SortTodos(todos)
	assert.Equal(t, once, todos)
	assert.Equal(t, "first pending", todos[1].Content)
	assert.Equal(t, "second pending", todos[2].Content)
	assert.Equal(t, "third pending", todos[3].Content)
}

func TestSortSessionsNewestFirst(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	sessions := []*Session{
		{ID: "old", LastModified: base},
		{ID: "new", LastModified: base.Add(2 * time.Hour)},
		{ID: "mid", LastModified: base.Add(time.Hour)},
	}
	SortSessions(sessions)

	assert.Equal(t, "new", sessions[0].ID)
	assert.Equal(t, "mid", sessions[1].ID)
	assert.Equal(t, "old", sessions[2].ID)
}

func TestSortProjectsByName(t *testing.T) {
	projects := []*Project{
		NewProject("/home/alice/zebra"),
		NewProject("/home/alice/alpha"),
		NewProject("/other/path/middle"),
	}
	SortProjects(projects, SortByName)

	assert.Equal(t, "/home/alice/alpha", projects[0].Path)
	assert.Equal(t, "/other/path/middle", projects[1].Path)
	assert.Equal(t, "/home/alice/zebra", projects[2].Path)
}

func TestSortProjectsByRecent(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	stale := NewProject("/stale")
	stale.AddSession(&Session{ID: "a", LastModified: base})
	fresh := NewProject("/fresh")
	fresh.AddSession(&Session{ID: "b", LastModified: base.Add(time.Hour)})

	projects := []*Project{stale, fresh}
	SortProjects(projects, SortByRecent)

	assert.Equal(t, "/fresh", projects[0].Path)
}

func TestSortProjectsByTodoCount(t *testing.T) {
	small := NewProject("/small")
	small.AddSession(&Session{ID: "a", Todos: []Todo{{Content: "1"}}})
	big := NewProject("/big")
	big.AddSession(&Session{ID: "b", Todos: []Todo{{Content: "1"}, {Content: "2"}, {Content: "3"}}})

	projects := []*Project{small, big}
	SortProjects(projects, SortByTodoCount)

	assert.Equal(t, "/big", projects[0].Path)
}

func TestParseProjectSortMode(t *testing.T) {
	assert.Equal(t, SortByName, ParseProjectSortMode("name"))
	assert.Equal(t, SortByName, ParseProjectSortMode(" NAME "))
	assert.Equal(t, SortByTodoCount, ParseProjectSortMode("todos"))
	assert.Equal(t, SortByRecent, ParseProjectSortMode("recent"))
	assert.Equal(t, SortByRecent, ParseProjectSortMode(""))
	assert.Equal(t, SortByRecent, ParseProjectSortMode("bogus"))
}

func TestSortedSessions(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	p := NewProject("/p")
	p.AddSession(&Session{ID: "old", LastModified: base})
	p.AddSession(&Session{ID: "new", LastModified: base.Add(time.Minute)})

	sessions := p.SortedSessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, "new", sessions[0].ID)
}
