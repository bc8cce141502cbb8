package render

import "github.com/charmbracelet/lipgloss"

// Status glyphs shared by the live display and the header legend.
const (
	GlyphCompleted  = "✓"
	GlyphInProgress = "▸"
	GlyphPending    = "○"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	projectStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	sessionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	completedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	inProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	pendingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	completedTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
	activeTextStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	pendingTextStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("249"))
)
