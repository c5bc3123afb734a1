package tui

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for the roster views.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	BoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")).
				BorderBottom(true).
				Bold(true)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Bold(false)
)
