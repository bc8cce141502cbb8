package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/render"
	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/todo"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62"))
	projectStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	sessionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	filterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	completedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	inProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	pendingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Claude Code Todos"))
	if m.loading {
		b.WriteString("  " + m.spin.View() + dimStyle.Render(" loading"))
	} else if m.snap != nil {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %d sessions · %d todos",
			m.snap.SessionCount(), m.snap.Stats.Total)))
	}
	b.WriteString("\n")

	if m.filtering || m.query != "" {
		prompt := "filter: " + m.query
		if m.filtering {
			prompt += "▌"
		}
		b.WriteString(filterStyle.Render(prompt) + "\n")
	}
	b.WriteString("\n")

	projects := m.visibleProjects()
	if len(projects) == 0 {
		b.WriteString(dimStyle.Render("no active todo sessions") + "\n")
	}
	for i, p := range projects {
		b.WriteString(m.renderProject(p, i == m.cursor))
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return m.clampHeight(b.String())
}

func (m Model) renderProject(p *todo.Project, selected bool) string {
	var b strings.Builder

	st := p.Stats()
	header := p.Path + fmt.Sprintf("  %d/%d done", st.Completed, st.Total)
	if selected {
		b.WriteString(selectedStyle.Render(header) + "\n")
	} else {
		b.WriteString(projectStyle.Render(p.Path) +
			dimStyle.Render(fmt.Sprintf("  %d/%d done", st.Completed, st.Total)) + "\n")
	}

	for _, s := range p.SortedSessions() {
		b.WriteString(sessionStyle.Render(fmt.Sprintf("  %s · %d todos", s.ID, len(s.Todos))) + "\n")
		for _, t := range s.Todos {
			b.WriteString(m.renderTodo(t) + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTodo(t todo.Todo) string {
	text := t.Display()
	if m.width > 8 {
		text = ansi.Truncate(text, m.width-8, "…")
	}
	switch t.Status {
	case todo.StatusCompleted:
		return "    " + completedStyle.Render(render.GlyphCompleted) + " " + dimStyle.Render(text)
	case todo.StatusInProgress:
		return "    " + inProgressStyle.Render(render.GlyphInProgress) + " " + text
	default:
		return "    " + pendingStyle.Render(render.GlyphPending) + " " + text
	}
}

// clampHeight trims the view to the terminal height.
func (m Model) clampHeight(view string) string {
	if m.height <= 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	if len(lines) <= m.height {
		return view
	}
	return strings.Join(lines[:m.height], "\n")
}
