package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Toast    lipgloss.Style

	Cell    lipgloss.Style
	TabStop lipgloss.Style
	Focused lipgloss.Style
	Paused  lipgloss.Style
}

func DefaultTheme() Theme {
	base := lipgloss.NewStyle().Padding(0, 1)
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Toast:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		Cell:    base.Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
		TabStop: base.Underline(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")),
		Focused: base.Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")),
		Paused:  base.Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("240")),
	}
}
