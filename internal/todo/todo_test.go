package todo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusRank(t *testing.T) {
	assert.Equal(t, 0, StatusCompleted.Rank())
	assert.Equal(t, 1, StatusInProgress.Rank())
	assert.Equal(t, 2, StatusPending.Rank())
	// Unrecognized statuses sort with pending.
	assert.Equal(t, 2, Status("blocked").Rank())
	assert.Equal(t, 2, Status("").Rank())
}

func TestTodoDisplay(t *testing.T) {
	td := Todo{Content: "Write the parser", ActiveForm: "Writing the parser"}

	td.Status = StatusPending
	assert.Equal(t, "Write the parser", td.Display())

	td.Status = StatusInProgress
	assert.Equal(t, "Writing the parser", td.Display())

	td.ActiveForm = ""
	assert.Equal(t, "Write the parser", td.Display())
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abc12345", ShortID("abc12345-1234-5678-9abc-def012345678"))
	assert.Equal(t, "short", ShortID("short"))
	assert.Equal(t, "", ShortID(""))
}

func TestSessionMerge(t *testing.T) {
	early := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)

	a := &Session{
		ID:     "abc12345",
		FullID: "abc12345-1234",
		Todos: []Todo{
			{Content: "shared", Status: StatusCompleted},
			{Content: "only in a", Status: StatusPending},
		},
		LastModified: early,
	}
	b := &Session{
		ID:     "abc12345",
		FullID: "abc12345-1234",
		Todos: []Todo{
			{Content: "shared", Status: StatusCompleted},
			{Content: "only in b", Status: StatusInProgress},
		},
		LastModified: late,
	}

	a.Merge(b)

	require.Len(t, a.Todos, 3)
	assert.Equal(t, "shared", a.Todos[0].Content)
	assert.Equal(t, "only in a", a.Todos[1].Content)
	assert.Equal(t, "only in b", a.Todos[2].Content)
	assert.Equal(t, late, a.LastModified, "merged LastModified is the max of the inputs")
}

func TestSessionMergeSameContentDifferentStatus(t *testing.T) {
	// Identity is (content, status): the same text in two states is two
	// distinct todos.
	a := &Session{Todos: []Todo{{Content: "task", Status: StatusPending}}}
	b := &Session{Todos: []Todo{{Content: "task", Status: StatusCompleted}}}

	a.Merge(b)
	assert.Len(t, a.Todos, 2)
}

func TestProjectAddSessionMergesDuplicates(t *testing.T) {
	p := NewProject("/home/alice/proj")
	p.AddSession(&Session{ID: "abc12345", Todos: []Todo{{Content: "one", Status: StatusPending}}})
	p.AddSession(&Session{ID: "abc12345", Todos: []Todo{{Content: "two", Status: StatusPending}}})

	require.Len(t, p.Sessions, 1, "at most one session per (project, id) pair")
	assert.Len(t, p.Sessions["abc12345"].Todos, 2)
}

func TestCollectStats(t *testing.T) {
	st := CollectStats([]Todo{
		{Content: "a", Status: StatusCompleted},
		{Content: "b", Status: StatusInProgress},
		{Content: "c", Status: StatusPending},
		{Content: "d", Status: Status("weird")},
	})

	assert.Equal(t, Stats{Completed: 1, Active: 1, Pending: 2, Total: 4}, st)
}

func TestProjectStats(t *testing.T) {
	p := NewProject("/p")
	p.AddSession(&Session{ID: "a", Todos: []Todo{{Content: "x", Status: StatusCompleted}}})
	p.AddSession(&Session{ID: "b", Todos: []Todo{{Content: "y", Status: StatusPending}}})

	assert.Equal(t, Stats{Completed: 1, Pending: 1, Total: 2}, p.Stats())
	assert.Equal(t, 2, p.TodoCount())
}
