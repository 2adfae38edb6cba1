package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles of the table widget.
type Styles struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Footer lipgloss.Style
	Help   lipgloss.Style
}

// DefaultStyles returns a muted default look.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).
			BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("240")),
		Cell:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Footer: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
