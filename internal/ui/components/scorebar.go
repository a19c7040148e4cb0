package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorly/internal/ui/theme"
)

// Score thresholds for bar coloring.
const (
	strongScore = 0.8
	weakScore   = 0.5
)

// ScoreBar renders a 0..1 ratio as a horizontal bar. The fill turns green
// for strong scores and red for weak ones.
type ScoreBar struct {
	Label string
	// LabelWidth pads Label so bars in a column line up.
	LabelWidth int
	Ratio      float64
	// Suffix is printed after the bar, e.g. "3/4".
	Suffix string
	Width  int
}

// View renders the bar.
func (b ScoreBar) View() string {
	var out strings.Builder

	if b.Label != "" {
		label := b.Label
		if pad := b.LabelWidth - lipgloss.Width(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		out.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(label))
		out.WriteString("  ")
	}

	suffix := ""
	if b.Suffix != "" {
		suffix = "  " + b.Suffix
	}

	barWidth := max(b.Width-lipgloss.Width(out.String())-lipgloss.Width(suffix), 4)
	filled := min(max(int(float64(barWidth)*b.Ratio), 0), barWidth)

	out.WriteString(lipgloss.NewStyle().
		Background(scoreColor(b.Ratio)).
		Render(strings.Repeat(" ", filled)))
	out.WriteString(lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled)))

	if suffix != "" {
		out.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix))
	}
	return out.String()
}

func scoreColor(ratio float64) color.Color {
	switch {
	case ratio >= strongScore:
		return theme.Success
	case ratio < weakScore:
		return theme.Error
	default:
		return theme.Highlight
	}
}
