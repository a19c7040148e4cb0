// Package ask implements the free-text question screen.
package ask

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorly/internal/screen"
	"github.com/abhisek/tutorly/internal/tutor"
	"github.com/abhisek/tutorly/internal/ui/components"
	"github.com/abhisek/tutorly/internal/ui/layout"
	"github.com/abhisek/tutorly/internal/ui/theme"
)

const inputWidth = 60

// answerReadyMsg is sent when the agent has answered a question.
type answerReadyMsg struct {
	Question string
	Result   *tutor.QAResult
	Err      error
}

// AskScreen sends questions to the agent and shows the latest explanation.
type AskScreen struct {
	agent   *tutor.Agent
	userID  string
	subject string

	input    components.TextInput
	pending  bool
	question string
	result   *tutor.QAResult
	errMsg   string
}

var _ screen.Screen = (*AskScreen)(nil)
var _ screen.KeyHintProvider = (*AskScreen)(nil)

// New creates an AskScreen for subject.
func New(agent *tutor.Agent, userID, subject string) *AskScreen {
	return &AskScreen{
		agent:   agent,
		userID:  userID,
		subject: subject,
		input:   components.NewTextInput("Ask anything about "+subject+"...", inputWidth),
	}
}

func (s *AskScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *AskScreen) Title() string {
	return "Ask"
}

func (s *AskScreen) KeyHints() []layout.KeyHint {
	if s.pending {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Ask"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AskScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerReadyMsg:
		s.pending = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.question = msg.Question
		s.result = msg.Result
		s.input = components.NewTextInput("Ask a follow-up...", inputWidth)
		return s, s.input.Init()

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s.submit()
		}
	}

	if s.pending {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *AskScreen) submit() (screen.Screen, tea.Cmd) {
	if s.pending || s.input.Blank() {
		return s, nil
	}
	s.pending = true
	s.errMsg = ""

	agent, userID, subject := s.agent, s.userID, s.subject
	text := strings.TrimSpace(s.input.Value())
	return s, func() tea.Msg {
		res, err := agent.HandleQuestion(context.Background(), userID, subject, text)
		return answerReadyMsg{Question: text, Result: res, Err: err}
	}
}

func (s *AskScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Subject: " + s.subject))
	b.WriteString("\n")
	b.WriteString(theme.Rule(width))
	b.WriteString("\n\n")

	if s.result != nil {
		b.WriteString(theme.Hint.Render("  Q: " + s.question))
		b.WriteString("\n\n")
		b.WriteString(theme.Paragraph.Width(max(width-4, 20)).Render(s.result.Explanation))
		b.WriteString("\n\n")
		b.WriteString("  ")
		if len(s.result.Concepts) > 0 {
			b.WriteString(theme.Tags(s.result.Concepts) + "   ")
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("Level: %s", s.result.EstimatedLevel)))
		b.WriteString("\n\n")
	}

	if s.errMsg != "" {
		b.WriteString(theme.ErrorText.Render("  " + s.errMsg))
		b.WriteString("\n\n")
	}

	if s.pending {
		b.WriteString(theme.Hint.Render("  Thinking..."))
	} else {
		b.WriteString("  " + s.input.View())
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
}
