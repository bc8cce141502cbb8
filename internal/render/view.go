package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/aggregate"
	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/todo"
)

// countdownHeaderRow is the 1-based header row rewritten by the
// countdown-only redraw.
const countdownHeaderRow = 3

// headerLines builds the fixed header block: title, legend, countdown
// placeholder, separator. Drawn exactly once.
func headerLines(width int) []string {
	legend := strings.Join([]string{
		completedStyle.Render(GlyphCompleted + " completed"),
		inProgressStyle.Render(GlyphInProgress + " in progress"),
		pendingStyle.Render(GlyphPending + " pending"),
	}, dimStyle.Render("  ·  "))

	return []string{
		titleStyle.Render("Claude Code Todo Tracker"),
		legend,
		countdownLine(0, width),
		dimStyle.Render(strings.Repeat("─", min(width, 60))),
	}
}

// countdownLine formats the status line showing time until the next
// forced refresh.
func countdownLine(remaining time.Duration, width int) string {
	var text string
	if remaining <= 0 {
		text = "refreshing…"
	} else {
		text = fmt.Sprintf("next refresh in %ds", int(remaining.Round(time.Second).Seconds()))
	}
	return truncateLine(dimStyle.Render(text), width)
}

// BuildBody renders one aggregation snapshot into display lines, width
// truncated. The line list fully determines the body region content.
func BuildBody(snap *aggregate.Snapshot, width int) []string {
	if snap.SessionCount() == 0 {
		return []string{dimStyle.Render("no active todo sessions")}
	}

	var lines []string
	for _, p := range snap.Projects {
		st := p.Stats()
		header := projectStyle.Render(p.Path) +
			dimStyle.Render(fmt.Sprintf("  %d/%d done", st.Completed, st.Total))
		lines = append(lines, truncateLine(header, width))

		for _, s := range p.SortedSessions() {
			meta := fmt.Sprintf("  %s · %d todos · %s",
				s.ID, len(s.Todos), relativeTime(s.LastModified))
			lines = append(lines, truncateLine(sessionStyle.Render(meta), width))
			for _, t := range s.Todos {
				lines = append(lines, todoLine(t, width))
			}
		}
		lines = append(lines, "")
	}

	summary := fmt.Sprintf("%d sessions · %s %d  %s %d  %s %d",
		snap.SessionCount(),
		GlyphCompleted, snap.Stats.Completed,
		GlyphInProgress, snap.Stats.Active,
		GlyphPending, snap.Stats.Pending)
	lines = append(lines, truncateLine(dimStyle.Render(summary), width))
	return lines
}

// todoLine formats one todo row with its status glyph. The text is
// width-truncated before styling so escape sequences never straddle the
// cut point.
func todoLine(t todo.Todo, width int) string {
	text := t.Display()
	if width > 6 {
		text = runewidth.Truncate(text, width-6, "…")
	}
	switch t.Status {
	case todo.StatusCompleted:
		return "    " + completedStyle.Render(GlyphCompleted) + " " + completedTextStyle.Render(text)
	case todo.StatusInProgress:
		return "    " + inProgressStyle.Render(GlyphInProgress) + " " + activeTextStyle.Render(text)
	default:
		return "    " + pendingStyle.Render(GlyphPending) + " " + pendingTextStyle.Render(text)
	}
}

// truncateLine caps a styled line at the terminal width. Escape
// sequences count as zero width.
func truncateLine(line string, width int) string {
	if width <= 0 {
		return line
	}
	return ansi.Truncate(line, width, "…")
}

// relativeTime renders a compact "how long ago" label.
func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < 5*time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
