package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Text   lipgloss.Style
	Cursor lipgloss.Style
	Tilde  lipgloss.Style

	StatusBar lipgloss.Style
	Message   lipgloss.Style
	Error     lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:      lipgloss.NewStyle(),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Tilde:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Message:   lipgloss.NewStyle(),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}
