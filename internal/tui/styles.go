package tui

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("255")).
			Foreground(lipgloss.Color("0"))

	editorTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("25")).
				Padding(0, 1)

	editorHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))
)
