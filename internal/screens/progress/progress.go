// Package progress shows the learner's graded history per concept.
package progress

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorly/internal/screen"
	"github.com/abhisek/tutorly/internal/tutor"
	"github.com/abhisek/tutorly/internal/ui/components"
	"github.com/abhisek/tutorly/internal/ui/theme"
)

type loadedMsg struct {
	Progress *tutor.Progress
	Err      error
}

// ProgressScreen renders tutor.Progress.
type ProgressScreen struct {
	agent  *tutor.Agent
	userID string

	progress *tutor.Progress
	errMsg   string
}

var _ screen.Screen = (*ProgressScreen)(nil)

// New creates a ProgressScreen for userID.
func New(agent *tutor.Agent, userID string) *ProgressScreen {
	return &ProgressScreen{agent: agent, userID: userID}
}

func (s *ProgressScreen) Init() tea.Cmd {
	agent, userID := s.agent, s.userID
	return func() tea.Msg {
		p, err := agent.Progress(context.Background(), userID)
		return loadedMsg{Progress: p, Err: err}
	}
}

func (s *ProgressScreen) Title() string {
	return "Progress"
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(loadedMsg); ok {
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.progress = msg.Progress
	}
	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch {
	case s.errMsg != "":
		body = theme.ErrorText.Render(s.errMsg)
	case s.progress == nil:
		body = theme.Hint.Render("Loading...")
	default:
		body = s.render(cw)
	}

	return components.Cabinet(components.Card("", body, cw), width, height)
}

func (s *ProgressScreen) render(cw int) string {
	p := s.progress
	var b strings.Builder

	b.WriteString(theme.Title.Render(s.userID))
	b.WriteString("\n\n")
	b.WriteString(theme.Paragraph.Render(p.Summary))
	b.WriteString("\n\n")
	b.WriteString(components.ScoreBar{
		Label:  "Accuracy",
		Ratio:  p.Accuracy,
		Suffix: fmt.Sprintf("%d%%", int(p.Accuracy*100)),
		Width:  cw - 8,
	}.View())
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d questions asked", p.Questions)))

	if len(p.Concepts) == 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("No exercises graded yet."))
		return b.String()
	}

	labelWidth := 0
	for _, c := range p.Concepts {
		labelWidth = max(labelWidth, lipgloss.Width(c.Concept))
	}

	b.WriteString("\n\n")
	for _, c := range p.Concepts {
		ratio := 0.0
		if c.Attempts > 0 {
			ratio = float64(c.Correct) / float64(c.Attempts)
		}
		b.WriteString(components.ScoreBar{
			Label:      c.Concept,
			LabelWidth: labelWidth,
			Ratio:      ratio,
			Suffix:     fmt.Sprintf("%d/%d", c.Correct, c.Attempts),
			Width:      cw - 8,
		}.View())
		b.WriteString("\n")
	}
	return b.String()
}
