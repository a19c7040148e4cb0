package practice

import "github.com/abhisek/tutorly/internal/tutor"

// conceptChosenMsg is sent when the learner picks a concept.
type conceptChosenMsg struct {
	Concept string
}

// levelChosenMsg is sent when the learner picks a level.
type levelChosenMsg struct {
	Level string
}

// exerciseReadyMsg is sent when the agent has produced an exercise.
type exerciseReadyMsg struct {
	Exercise *tutor.Exercise
	Err      error
}

// gradedMsg is sent when the agent has graded an answer.
type gradedMsg struct {
	Result *tutor.GradeResult
	Err    error
}
