package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	keywordStyle   = lipgloss.NewStyle().Foreground(keywordColor()).Bold(true)
	paragraphStyle = lipgloss.NewStyle().Width(78).Padding(0, 0, 0, 2)
)

func keywordColor() lipgloss.Color {
	if termenv.HasDarkBackground() {
		return lipgloss.Color("#41ffef")
	}
	return lipgloss.Color("#03a87c")
}

// keyword highlights a word in help text.
func keyword(s string) string {
	return keywordStyle.Render(s)
}

// paragraph formats a block of help text.
func paragraph(s string) string {
	return paragraphStyle.Render(s)
}
