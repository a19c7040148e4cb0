// Package theme holds the palette and shared lipgloss styles.
package theme

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Palette
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Highlight = lipgloss.Color("#FACC15") // Chalk yellow
	Info      = lipgloss.Color("#22D3EE")

	Text    = lipgloss.Color("#F8FAFC")
	TextDim = lipgloss.Color("#94A3B8")
	BgDark  = lipgloss.Color("#0F172A")
	BgCard  = lipgloss.Color("#1E293B")
	Border  = lipgloss.Color("#334155")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Paragraph is left unaligned so RTL text keeps the terminal's bidi order.
	Paragraph = lipgloss.NewStyle().
			Foreground(Text).
			Padding(0, 2)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error)

	// Tag marks a concept name inline.
	Tag = lipgloss.NewStyle().
		Foreground(BgDark).
		Background(Info).
		Padding(0, 1)
)

// Feedback
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// Tags renders each concept as a Tag separated by a space.
func Tags(concepts []string) string {
	parts := make([]string, len(concepts))
	for i, c := range concepts {
		parts[i] = Tag.Render(c)
	}
	return strings.Join(parts, " ")
}

// Rule is a horizontal divider inset two columns from each edge.
func Rule(width int) string {
	return lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", max(width-4, 0)))
}
