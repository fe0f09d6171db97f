package cmd

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle       = lipgloss.NewStyle().Faint(true)
	headerStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	correctStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	incorrectStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)
