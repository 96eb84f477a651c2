package ux

import "github.com/charmbracelet/lipgloss"

// Styles decorates single-line terminal messages. Multi-line text must not be
// passed through a style, lipgloss pads every line to the same width.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Header  lipgloss.Style
	Hint    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Header:  lipgloss.NewStyle().Bold(true),
		Hint:    lipgloss.NewStyle().Faint(true),
	}
}

// PlainStyles renders text unchanged.
func PlainStyles() Styles {
	return Styles{
		Error:   lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Header:  lipgloss.NewStyle(),
		Hint:    lipgloss.NewStyle(),
	}
}
