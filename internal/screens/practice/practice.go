// Package practice implements the exercise loop: pick a concept and a
// level, answer exercises, and read the graded feedback.
package practice

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tutorly/internal/heuristics"
	"github.com/abhisek/tutorly/internal/knowledge"
	"github.com/abhisek/tutorly/internal/screen"
	"github.com/abhisek/tutorly/internal/tutor"
	"github.com/abhisek/tutorly/internal/ui/components"
	"github.com/abhisek/tutorly/internal/ui/layout"
)

const answerWidth = 30

// Phase is where the learner is in the practice loop.
type Phase int

const (
	PhaseConcept Phase = iota
	PhaseLevel
	PhaseLoading
	PhaseAnswer
	PhaseGrading
	PhaseFeedback
)

// PracticeScreen drives GenerateExercise and GradeAnswer.
type PracticeScreen struct {
	agent   *tutor.Agent
	userID  string
	subject string

	phase       Phase
	conceptMenu components.Menu
	levelMenu   components.Menu
	concept     string
	level       string

	exercise *tutor.Exercise
	input    components.TextInput
	result   *tutor.GradeResult
	answered int
	correct  int
	errMsg   string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen for subject.
func New(agent *tutor.Agent, kb *knowledge.Store, userID, subject string) *PracticeScreen {
	s := &PracticeScreen{
		agent:   agent,
		userID:  userID,
		subject: subject,
	}

	concepts, err := kb.Concepts(subject)
	if err != nil {
		s.errMsg = err.Error()
	}
	items := make([]components.MenuItem, 0, len(concepts))
	for _, c := range concepts {
		item := components.MenuItem{Label: c, Action: func() tea.Cmd {
			return func() tea.Msg { return conceptChosenMsg{Concept: c} }
		}}
		if concept, err := kb.Concept(subject, c); err == nil {
			item.Detail = concept.Description
		}
		items = append(items, item)
	}
	s.conceptMenu = components.NewMenu(items)

	levels := heuristics.Levels()
	items = make([]components.MenuItem, 0, len(levels))
	for _, l := range levels {
		items = append(items, components.MenuItem{Label: l.String(), Action: func() tea.Cmd {
			return func() tea.Msg { return levelChosenMsg{Level: l.String()} }
		}})
	}
	s.levelMenu = components.NewMenu(items)

	return s
}

func (s *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

// Phase returns the current phase.
func (s *PracticeScreen) Phase() Phase {
	return s.phase
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case PhaseConcept, PhaseLevel:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	case PhaseAnswer:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	case PhaseFeedback:
		return []layout.KeyHint{
			{Key: "N", Description: "Next exercise"},
			{Key: "C", Description: "Change concept"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case conceptChosenMsg:
		s.concept = msg.Concept
		s.phase = PhaseLevel
		return s, nil

	case levelChosenMsg:
		s.level = msg.Level
		return s, s.nextExercise()

	case exerciseReadyMsg:
		return s.handleExerciseReady(msg)

	case gradedMsg:
		return s.handleGraded(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == PhaseAnswer {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.phase {
	case PhaseConcept:
		s.conceptMenu, cmd = s.conceptMenu.Update(msg)
	case PhaseLevel:
		s.levelMenu, cmd = s.levelMenu.Update(msg)
	case PhaseAnswer:
		if msg.String() == "enter" {
			return s, s.submit()
		}
		s.input, cmd = s.input.Update(msg)
	case PhaseFeedback:
		switch msg.String() {
		case "n", "enter":
			return s, s.nextExercise()
		case "c":
			s.phase = PhaseConcept
			s.exercise, s.result = nil, nil
		}
	}
	return s, cmd
}

func (s *PracticeScreen) nextExercise() tea.Cmd {
	s.phase = PhaseLoading
	s.errMsg = ""
	s.result = nil

	agent, subject, concept, level := s.agent, s.subject, s.concept, s.level
	return func() tea.Msg {
		ex, err := agent.GenerateExercise(context.Background(), subject, concept, level)
		return exerciseReadyMsg{Exercise: ex, Err: err}
	}
}

func (s *PracticeScreen) handleExerciseReady(msg exerciseReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		s.phase = PhaseConcept
		return s, nil
	}
	s.exercise = msg.Exercise
	s.input = components.NewTextInput("Type your answer...", answerWidth)
	s.phase = PhaseAnswer
	return s, s.input.Init()
}

func (s *PracticeScreen) submit() tea.Cmd {
	if s.input.Blank() {
		return nil
	}
	s.phase = PhaseGrading
	s.errMsg = ""

	agent, userID, ex, answer := s.agent, s.userID, *s.exercise, s.input.Value()
	return func() tea.Msg {
		res, err := agent.GradeAnswer(context.Background(), ex, answer, userID)
		return gradedMsg{Result: res, Err: err}
	}
}

func (s *PracticeScreen) handleGraded(msg gradedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// Keep the exercise so the learner can retry the submission.
		s.errMsg = msg.Err.Error()
		s.phase = PhaseAnswer
		return s, nil
	}
	s.result = msg.Result
	s.input.Submit(msg.Result.Correct)
	s.answered++
	if msg.Result.Correct {
		s.correct++
	}
	s.phase = PhaseFeedback
	return s, nil
}
