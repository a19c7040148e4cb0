package heuristics

import (
	"fmt"
	"strings"

	"github.com/abhisek/tutorly/internal/session"
)

// Level is a learner's estimated proficiency.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

const (
	// MinAttempts is the number of graded exercises needed before the
	// correctness ratio is trusted.
	MinAttempts = 3

	// IntermediateRatio and AdvancedRatio are the lower bounds of their bands.
	IntermediateRatio = 0.4
	AdvancedRatio     = 0.75
)

// Levels returns all levels from easiest to hardest.
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return l, nil
	}
	return "", fmt.Errorf("unknown level %q (want beginner, intermediate or advanced)", s)
}

func (l Level) String() string {
	return string(l)
}

// EstimateLevel maps a history to a level using the ratio of correct
// exercise events. Histories with fewer than MinAttempts exercises are
// always beginner. qa events are ignored.
func EstimateLevel(history []session.Event) Level {
	var attempts, correct int
	for _, e := range history {
		if e.Type != session.EventExercise {
			continue
		}
		attempts++
		if e.Correct {
			correct++
		}
	}

	if attempts < MinAttempts {
		return LevelBeginner
	}

	ratio := float64(correct) / float64(attempts)
	switch {
	case ratio < IntermediateRatio:
		return LevelBeginner
	case ratio < AdvancedRatio:
		return LevelIntermediate
	default:
		return LevelAdvanced
	}
}
