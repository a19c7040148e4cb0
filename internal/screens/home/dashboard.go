package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorly/internal/heuristics"
	"github.com/abhisek/tutorly/internal/screens/welcome"
	"github.com/abhisek/tutorly/internal/tutor"
	"github.com/abhisek/tutorly/internal/ui/theme"
)

const arcadeTitleCompact = "T · U · T · O · R · L · Y"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Highlight).
		Bold(true)

	title := welcome.BannerArt
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderSubjectBar shows the active subject and how many are available.
func renderSubjectBar(subject string, total, cw int) string {
	if total == 0 {
		return lipgloss.NewStyle().
			Foreground(theme.Accent).
			Width(cw).
			Align(lipgloss.Center).
			Render("⚠ No subjects found in the data directory")
	}
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render("SUBJECT ")
	name := lipgloss.NewStyle().Foreground(theme.Info).Bold(true).Render(subject)
	count := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  (%d)", total))
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(label + name + count)
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(p *tutor.Progress, cw int, compact bool) string {
	correctStyle := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
	attemptStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	levelStyle := lipgloss.NewStyle().Foreground(theme.Info).Bold(true)

	var correct, attempts int
	level := "-"
	if p != nil {
		correct, attempts, level = p.Correct, p.Attempts, p.Level.String()
	}

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			correctStyle.Render(fmt.Sprintf("★%d", correct)),
			attemptStyle.Render(fmt.Sprintf("◆%d", attempts)),
			levelStyle.Render(level),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			correctStyle.Render(fmt.Sprintf("★ %d CORRECT", correct)),
			attemptStyle.Render(fmt.Sprintf("◆ %d TRIED", attempts)),
			levelStyle.Render(strings.ToUpper(level)),
		)
	}

	if focus, ok := focusConcept(p); ok && !compact {
		stats += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render("FOCUS ") +
			theme.Tag.Render(focus)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Info).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// focusConcept returns the practiced concept with the lowest accuracy.
// Concepts with fewer than heuristics.MinAttempts attempts or a perfect
// record are not candidates.
func focusConcept(p *tutor.Progress) (string, bool) {
	if p == nil {
		return "", false
	}
	best, bestRatio := "", 1.0
	for _, c := range p.Concepts {
		if c.Attempts < heuristics.MinAttempts {
			continue
		}
		if ratio := float64(c.Correct) / float64(c.Attempts); ratio < bestRatio {
			best, bestRatio = c.Concept, ratio
		}
	}
	return best, best != ""
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenuButtons renders each menu item as a fixed-width button.
func renderMenuButtons(items []string, selected int, cw int, disabled map[int]bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Highlight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Highlight).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	disabledBtn := normalBtn.Foreground(theme.TextDim)

	var buttons []string
	for i, label := range items {
		switch {
		case disabled[i]:
			buttons = append(buttons, disabledBtn.Render(label))
		case i == selected:
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		default:
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuLines renders menu items as plain lines for small
// terminals where bordered buttons would overflow.
func renderMenuLines(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		switch {
		case disabled[i]:
			line = lipgloss.NewStyle().Foreground(theme.TextDim).Render("   " + label)
		case i == selected:
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Highlight).
				Bold(true).
				Render(" ▸ " + label + " ")
		default:
			line = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

func renderError(msg string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Error).
		Width(cw).
		Align(lipgloss.Center).
		Render(msg)
}
