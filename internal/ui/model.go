// Package ui is the interactive list view over the aggregated todo
// sessions: the same data as the in-place terminal display, but with
// cursor navigation and fuzzy project filtering.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/aggregate"
	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/todo"
	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/watch"
)

// tickInterval drives the periodic refresh when no file change arrives.
const tickInterval = 2 * time.Second

type tickMsg time.Time

type watchMsg watch.Event

type snapshotMsg *aggregate.Snapshot

// keyMap defines the list view key bindings.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Filter  key.Binding
	Clear   key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Filter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Clear:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Filter, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Refresh, k.Filter, k.Clear, k.Quit}}
}

// Model is the bubbletea model for the list view.
type Model struct {
	agg     *aggregate.Aggregator
	watcher *watch.Watcher

	snap    *aggregate.Snapshot
	cursor  int
	width   int
	height  int
	loading bool

	filtering bool
	query     string

	spin spinner.Model
	keys keyMap
	help help.Model
}

// New creates the list view model. The watcher may be nil, in which case
// only the periodic tick drives refreshes.
func New(agg *aggregate.Aggregator, watcher *watch.Watcher) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		agg:     agg,
		watcher: watcher,
		loading: true,
		spin:    sp,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick, m.aggregateCmd(), tickCmd()}
	if m.watcher != nil {
		cmds = append(cmds, m.waitForEvent())
	}
	return tea.Batch(cmds...)
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// aggregateCmd runs one aggregation pass off the update loop.
func (m Model) aggregateCmd() tea.Cmd {
	agg := m.agg
	return func() tea.Msg {
		return snapshotMsg(agg.Aggregate())
	}
}

// waitForEvent blocks on the watcher's queue.
func (m Model) waitForEvent() tea.Cmd {
	ch := m.watcher.Events()
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return watchMsg(ev)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.aggregateCmd(), tickCmd())

	case watchMsg:
		cmds := []tea.Cmd{m.waitForEvent()}
		if watch.Event(msg).Kind == watch.EventRefresh {
			cmds = append(cmds, m.aggregateCmd())
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snap = (*aggregate.Snapshot)(msg)
		m.loading = false
		m.clampCursor()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "enter":
			m.filtering = false
		case "esc":
			m.filtering = false
			m.query = ""
		case "backspace":
			if len(m.query) > 0 {
				m.query = m.query[:len(m.query)-1]
			}
		default:
			if len(msg.Runes) > 0 {
				m.query += string(msg.Runes)
			}
		}
		m.clampCursor()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visibleProjects())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Refresh):
		return m, m.aggregateCmd()
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
	case key.Matches(msg, m.keys.Clear):
		m.query = ""
		m.clampCursor()
	}
	return m, nil
}

// visibleProjects applies the fuzzy filter to the snapshot's projects.
func (m Model) visibleProjects() []*todo.Project {
	if m.snap == nil {
		return nil
	}
	if m.query == "" {
		return m.snap.Projects
	}
	paths := make([]string, len(m.snap.Projects))
	for i, p := range m.snap.Projects {
		paths[i] = p.Path
	}
	matches := fuzzy.Find(m.query, paths)
	filtered := make([]*todo.Project, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, m.snap.Projects[match.Index])
	}
	return filtered
}

func (m *Model) clampCursor() {
	n := len(m.visibleProjects())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
