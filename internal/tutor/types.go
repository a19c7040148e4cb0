package tutor

import "github.com/abhisek/tutorly/internal/heuristics"

// ExerciseMeta describes where an exercise came from.
type ExerciseMeta struct {
	// Generated is true when no pool exercise matched and the exercise
	// was synthesized from a concept example.
	Generated bool `json:"generated"`
}

// Exercise is a single practice item handed to the learner. It is not
// persisted; the caller keeps it until the answer is graded.
type Exercise struct {
	ID      string       `json:"id"`
	Subject string       `json:"subject" validate:"required"`
	Concept string       `json:"concept" validate:"required"`
	Level   string       `json:"level" validate:"required"`
	Prompt  string       `json:"prompt"`
	Answer  string       `json:"answer"`
	Meta    ExerciseMeta `json:"meta"`
}

// QAResult is the answer to a free-text question.
type QAResult struct {
	Explanation    string           `json:"explanation"`
	Concepts       []string         `json:"concepts"`
	EstimatedLevel heuristics.Level `json:"estimated_level"`
}

// GradeResult is the outcome of grading one answer.
type GradeResult struct {
	Correct  bool   `json:"correct"`
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
	Feedback string `json:"feedback"`
	NextStep string `json:"next_step"`
}

// ConceptProgress counts graded exercises for one concept.
type ConceptProgress struct {
	Concept  string `json:"concept"`
	Attempts int    `json:"attempts"`
	Correct  int    `json:"correct"`
}

// Progress is a structured view of a learner's record.
type Progress struct {
	Summary   string            `json:"summary"`
	Attempts  int               `json:"attempts"`
	Correct   int               `json:"correct"`
	Accuracy  float64           `json:"accuracy"`
	Questions int               `json:"questions"`
	Level     heuristics.Level  `json:"level"`
	Concepts  []ConceptProgress `json:"concepts"`
}
