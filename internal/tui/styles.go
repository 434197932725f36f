package tui

import "github.com/charmbracelet/lipgloss"

var (
	weekdayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	pastStyle = lipgloss.NewStyle().
			Faint(true)

	docStyle = lipgloss.NewStyle().
			Margin(1, 2)
)
