package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tutorly/internal/knowledge"
	"github.com/abhisek/tutorly/internal/router"
	"github.com/abhisek/tutorly/internal/screen"
	"github.com/abhisek/tutorly/internal/screens/ask"
	"github.com/abhisek/tutorly/internal/screens/practice"
	progressscreen "github.com/abhisek/tutorly/internal/screens/progress"
	"github.com/abhisek/tutorly/internal/tutor"
	"github.com/abhisek/tutorly/internal/ui/components"
	"github.com/abhisek/tutorly/internal/ui/layout"
)

// progressLoadedMsg carries the learner's progress for the stats bar.
type progressLoadedMsg struct {
	Progress *tutor.Progress
	Err      error
}

const (
	itemAsk = iota
	itemPractice
	itemProgress
	itemExit
)

// HomeScreen is the main menu. It tracks the active subject, which the
// learner cycles with Tab.
type HomeScreen struct {
	agent    *tutor.Agent
	kb       *knowledge.Store
	userID   string
	subjects []string
	current  int

	menu       components.Menu
	menuLabels []string
	progress   *tutor.Progress
	errMsg     string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Refresher = (*HomeScreen)(nil)

// New creates a HomeScreen. subject preselects a subject when it exists.
func New(agent *tutor.Agent, kb *knowledge.Store, userID, subject string) *HomeScreen {
	h := &HomeScreen{
		agent:      agent,
		kb:         kb,
		userID:     userID,
		menuLabels: []string{"ASK A QUESTION", "PRACTICE", "MY PROGRESS", "EXIT"},
	}

	subjects, err := kb.Subjects()
	if err != nil {
		h.errMsg = err.Error()
	}
	h.subjects = subjects
	for i, s := range subjects {
		if s == subject {
			h.current = i
		}
	}

	noSubject := len(subjects) == 0
	items := []components.MenuItem{
		{Label: h.menuLabels[itemAsk], Disabled: noSubject, Action: func() tea.Cmd {
			return push(ask.New(h.agent, h.userID, h.Subject()))
		}},
		{Label: h.menuLabels[itemPractice], Disabled: noSubject, Action: func() tea.Cmd {
			return push(practice.New(h.agent, h.kb, h.userID, h.Subject()))
		}},
		{Label: h.menuLabels[itemProgress], Action: func() tea.Cmd {
			return push(progressscreen.New(h.agent, h.userID))
		}},
		{Label: h.menuLabels[itemExit], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

// Subject returns the active subject, or "" when none is available.
func (h *HomeScreen) Subject() string {
	if len(h.subjects) == 0 {
		return ""
	}
	return h.subjects[h.current]
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadProgress()
}

// Refresh reloads progress after a practice or ask screen is closed.
func (h *HomeScreen) Refresh() tea.Cmd {
	return h.loadProgress()
}

func (h *HomeScreen) loadProgress() tea.Cmd {
	agent, userID := h.agent, h.userID
	return func() tea.Msg {
		p, err := agent.Progress(context.Background(), userID)
		return progressLoadedMsg{Progress: p, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.progress = msg.Progress
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "tab" && len(h.subjects) > 0 {
			h.current = (h.current + 1) % len(h.subjects)
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	termHeight := height + layout.HeaderHeight + layout.FooterHeight + 2
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(h.progress), cw))
	}
	sections = append(sections, renderSubjectBar(h.Subject(), len(h.subjects), cw))
	sections = append(sections, renderStatsBar(h.progress, cw, compact))

	disabled := make(map[int]bool)
	for i, item := range h.menu.Items {
		disabled[i] = item.Disabled
	}
	if compact {
		sections = append(sections, renderMenuLines(h.menuLabels, h.menu.Selected, cw, disabled))
	} else {
		sections = append(sections, renderMenuButtons(h.menuLabels, h.menu.Selected, cw, disabled))
	}
	if h.errMsg != "" {
		sections = append(sections, renderError(h.errMsg, cw))
	}

	return components.Cabinet(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Tab", Description: "Subject"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
