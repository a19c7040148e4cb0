package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorly/internal/heuristics"
	"github.com/abhisek/tutorly/internal/tutor"
	"github.com/abhisek/tutorly/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default purple
	MascotCelebrating                      // Gold, star eyes
	MascotAlert                            // Orange, exclamation
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ?!∑ │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ?!∑ │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ ?!∑ │
└─────┘`

// Accuracy thresholds for the mascot mood once enough exercises are graded.
const (
	celebrateAccuracy = 0.8
	alertAccuracy     = 0.5
)

// mascotFor picks a mood from the learner's accuracy.
func mascotFor(p *tutor.Progress) MascotVariant {
	if p == nil || p.Attempts < heuristics.MinAttempts {
		return MascotIdle
	}
	switch {
	case p.Accuracy >= celebrateAccuracy:
		return MascotCelebrating
	case p.Accuracy < alertAccuracy:
		return MascotAlert
	}
	return MascotIdle
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch variant {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Highlight
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
