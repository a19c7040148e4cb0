package heuristics

import "strings"

// Texts holds the learner-facing strings used by StructureFeedback.
type Texts struct {
	Praise        string   `yaml:"praise"`
	SuccessNext   string   `yaml:"success_next"`
	FailurePrefix string   `yaml:"failure_prefix"`
	DefaultHints  []string `yaml:"default_hints"`
	FailureNext   string   `yaml:"failure_next"`
}

// DefaultTexts returns the built-in Arabic feedback strings.
func DefaultTexts() Texts {
	return Texts{
		Praise:        "إجابة صحيحة! أحسنت. تابع إلى تمرين أصعب قليلًا.",
		SuccessNext:   "جرّب تمرينًا على نفس المفهوم بمستوى أعلى.",
		FailurePrefix: "الإجابة غير دقيقة.",
		DefaultHints: []string{
			"راجع التعريف الأساسي للمفهوم.",
			"قسّم المسألة إلى خطوات أبسط.",
		},
		FailureNext: "اقرأ مثالًا مشابهًا ثم أعد المحاولة.",
	}
}

// Merge returns t with empty fields taken from defaults.
func (t Texts) Merge(defaults Texts) Texts {
	if t.Praise == "" {
		t.Praise = defaults.Praise
	}
	if t.SuccessNext == "" {
		t.SuccessNext = defaults.SuccessNext
	}
	if t.FailurePrefix == "" {
		t.FailurePrefix = defaults.FailurePrefix
	}
	if len(t.DefaultHints) == 0 {
		t.DefaultHints = defaults.DefaultHints
	}
	if t.FailureNext == "" {
		t.FailureNext = defaults.FailureNext
	}
	return t
}

// Outcome describes a graded answer.
type Outcome struct {
	Correct  bool
	Score    int
	MaxScore int      // <= 0 means 1
	Hints    []string // failure only; empty uses Texts.DefaultHints
	Next     string   // failure only; empty uses Texts.FailureNext
}

// NewOutcome returns an outcome scored 1/1 or 0/1.
func NewOutcome(correct bool) Outcome {
	o := Outcome{Correct: correct, MaxScore: 1}
	if correct {
		o.Score = 1
	}
	return o
}

// Feedback is the structured result shown to the learner.
type Feedback struct {
	Score    int
	MaxScore int
	Feedback string
	NextStep string
}

// StructureFeedback turns an outcome into praise or remediation text.
func StructureFeedback(o Outcome, texts Texts) Feedback {
	maxScore := o.MaxScore
	if maxScore <= 0 {
		maxScore = 1
	}

	if o.Correct {
		return Feedback{
			Score:    o.Score,
			MaxScore: maxScore,
			Feedback: texts.Praise,
			NextStep: texts.SuccessNext,
		}
	}

	hints := o.Hints
	if len(hints) == 0 {
		hints = texts.DefaultHints
	}
	next := o.Next
	if next == "" {
		next = texts.FailureNext
	}
	return Feedback{
		Score:    o.Score,
		MaxScore: maxScore,
		Feedback: texts.FailurePrefix + " " + strings.Join(hints, " "),
		NextStep: next,
	}
}
