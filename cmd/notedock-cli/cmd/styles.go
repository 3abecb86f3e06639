package cmd

import "github.com/charmbracelet/lipgloss"

var (
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Error     = lipgloss.Color("#EF4444") // Red

	SectionTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	NavEntry = lipgloss.NewStyle().
			Foreground(Secondary)

	NodeCategory = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")) // Blue

	NodeDocument = lipgloss.NewStyle()

	TreeBranch = lipgloss.NewStyle().Foreground(Muted)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
