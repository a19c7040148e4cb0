package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorly/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))

	switch s.phase {
	case PhaseConcept:
		b.WriteString(theme.Subtitle.Width(width).Render("Pick a concept"))
		b.WriteString("\n\n")
		if len(s.conceptMenu.Items) == 0 {
			b.WriteString(theme.Hint.Render("  This subject has no concepts."))
		} else {
			b.WriteString(s.conceptMenu.View())
		}
	case PhaseLevel:
		b.WriteString(theme.Subtitle.Width(width).Render("Pick a level for " + s.concept))
		b.WriteString("\n\n")
		b.WriteString(s.levelMenu.View())
	case PhaseLoading:
		b.WriteString(theme.Hint.Render("  Preparing an exercise..."))
	case PhaseAnswer, PhaseGrading:
		b.WriteString(s.renderExercise(width))
	case PhaseFeedback:
		b.WriteString(s.renderExercise(width))
		b.WriteString(s.renderFeedback(width))
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Render("  " + s.errMsg))
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
}

func (s *PracticeScreen) renderInfoLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", s.subject))
	if s.concept != "" {
		left += lipgloss.NewStyle().Foreground(theme.TextDim).Render(" / " + s.concept)
	}
	if s.level != "" && s.phase != PhaseConcept && s.phase != PhaseLevel {
		left += lipgloss.NewStyle().Foreground(theme.TextDim).Render(" / " + s.level)
	}

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d/%d",
			lipgloss.NewStyle().Foreground(theme.Success).Render("*"),
			s.correct, s.answered))

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}

	return line + "\n" +
		theme.Rule(width) +
		"\n\n"
}

func (s *PracticeScreen) renderExercise(width int) string {
	if s.exercise == nil {
		return ""
	}
	var b strings.Builder

	prompt := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(prompt.Render(s.exercise.Prompt))
	b.WriteString("\n\n")
	if s.exercise.Meta.Generated {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Render(theme.Hint.Render("(built from a concept example)")))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s.input.View()))
	if s.phase == PhaseGrading {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("  Checking..."))
	}
	return b.String()
}

func (s *PracticeScreen) renderFeedback(width int) string {
	r := s.result
	if r == nil {
		return ""
	}

	verdict := theme.Incorrect.Render(fmt.Sprintf("✗  %d/%d", r.Score, r.MaxScore))
	if r.Correct {
		verdict = theme.Correct.Render(fmt.Sprintf("✓  %d/%d", r.Score, r.MaxScore))
	}
	if !r.Correct && s.exercise != nil {
		verdict += lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("   expected: " + s.exercise.Answer)
	}

	card := theme.Card.Width(max(width-8, 20)).Render(
		r.Feedback + "\n\n" + theme.Hint.Render(r.NextStep))

	return "\n\n  " + verdict + "\n\n" + card
}
