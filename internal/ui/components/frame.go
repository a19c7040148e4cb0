package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorly/internal/ui/theme"
)

const (
	maxContentWidth = 72
	minContentWidth = 24
)

// ContentWidth returns the inner width shared by every card on a screen,
// leaving room for the cabinet border and padding.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, minContentWidth), maxContentWidth)
}

// Cabinet centers content inside a double border filling width x height.
func Cabinet(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card draws body in a rounded box of content width cw. A non-empty
// title is rendered as a heading above the body.
func Card(title, body string, cw int) string {
	if title != "" {
		body = theme.Subtitle.Render(title) + "\n\n" + body
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(body)
}
