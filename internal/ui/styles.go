package ui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles of the checker screen.
type Styles struct {
	Title     lipgloss.Style
	Digest    lipgloss.Style
	Hint      lipgloss.Style
	Secondary lipgloss.Style
	Success   lipgloss.Style
	Danger    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Digest:    lipgloss.NewStyle().Faint(true),
		Hint:      lipgloss.NewStyle().Faint(true).MarginTop(1),
		Secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Danger:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
