package heuristics

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/abhisek/tutorly/internal/session"
)

func history(correct, wrong, qa int) []session.Event {
	var h []session.Event
	for i := 0; i < qa; i++ {
		h = append(h, session.Event{Type: session.EventQA, Text: "q", Level: "beginner"})
	}
	for i := 0; i < correct; i++ {
		h = append(h, session.Event{Type: session.EventExercise, Concept: "c", Correct: true})
	}
	for i := 0; i < wrong; i++ {
		h = append(h, session.Event{Type: session.EventExercise, Concept: "c"})
	}
	return h
}

func TestEstimateLevel(t *testing.T) {
	tests := []struct {
		name           string
		correct, wrong int
		qa             int
		want           Level
	}{
		{"empty", 0, 0, 0, LevelBeginner},
		{"qa only", 0, 0, 10, LevelBeginner},
		{"two perfect", 2, 0, 0, LevelBeginner},
		{"below 0.4", 1, 2, 0, LevelBeginner},
		{"exactly 0.4", 2, 3, 0, LevelIntermediate},
		{"two thirds", 2, 1, 0, LevelIntermediate},
		{"just below 0.75", 14, 5, 0, LevelIntermediate},
		{"exactly 0.75", 3, 1, 0, LevelAdvanced},
		{"perfect", 3, 0, 4, LevelAdvanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateLevel(history(tt.correct, tt.wrong, tt.qa))
			if got != tt.want {
				t.Errorf("EstimateLevel = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEstimateLevel_FewAttemptsAlwaysBeginner(t *testing.T) {
	for correct := 0; correct < MinAttempts; correct++ {
		for wrong := 0; correct+wrong < MinAttempts; wrong++ {
			if got := EstimateLevel(history(correct, wrong, 0)); got != LevelBeginner {
				t.Errorf("%d correct, %d wrong: got %s", correct, wrong, got)
			}
		}
	}
}

func TestEstimateLevel_MonotonicInRatio(t *testing.T) {
	rank := map[Level]int{LevelBeginner: 0, LevelIntermediate: 1, LevelAdvanced: 2}
	const attempts = 20

	prev := -1
	for correct := 0; correct <= attempts; correct++ {
		r := rank[EstimateLevel(history(correct, attempts-correct, 0))]
		if r < prev {
			t.Fatalf("level decreased at %d/%d correct", correct, attempts)
		}
		prev = r
	}
}

func TestParseLevel(t *testing.T) {
	for _, l := range Levels() {
		got, err := ParseLevel(" " + strings.ToUpper(string(l)) + " ")
		if err != nil || got != l {
			t.Errorf("ParseLevel(%s) = %s, %v", l, got, err)
		}
	}
	if _, err := ParseLevel("expert"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestExtractConcepts(t *testing.T) {
	available := []string{"addition", "fractions", "multiplication"}

	tests := []struct {
		text      string
		available []string
		want      []string
	}{
		{"How do FRACTIONS work?", available, []string{"fractions"}},
		{"multiplication and addition", available, []string{"addition", "multiplication"}},
		{"something unrelated", available, []string{"addition", "fractions"}},
		{"nothing", []string{"only"}, []string{"only"}},
		{"nothing", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := ExtractConcepts(tt.text, tt.available)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractConcepts = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractConcepts_FallbackNonEmpty(t *testing.T) {
	for n := 1; n <= 5; n++ {
		var available []string
		for i := 0; i < n; i++ {
			available = append(available, fmt.Sprintf("concept-%d", i))
		}
		got := ExtractConcepts("zzz", available)
		if len(got) == 0 || len(got) > 2 {
			t.Errorf("n=%d: got %v", n, got)
		}
	}
}

func TestExtractConcepts_DoesNotAliasInput(t *testing.T) {
	available := []string{"a1", "b1", "c1"}
	got := ExtractConcepts("zzz", available)
	got[0] = "mutated"
	if available[0] != "a1" {
		t.Fatal("fallback result aliases the input slice")
	}
}

func TestStructureFeedback(t *testing.T) {
	texts := DefaultTexts()

	t.Run("correct", func(t *testing.T) {
		fb := StructureFeedback(NewOutcome(true), texts)
		if fb.Score != 1 || fb.MaxScore != 1 {
			t.Errorf("score = %d/%d, want 1/1", fb.Score, fb.MaxScore)
		}
		if fb.Feedback != texts.Praise || fb.NextStep != texts.SuccessNext {
			t.Errorf("unexpected feedback %+v", fb)
		}
	})

	t.Run("incorrect with default hints", func(t *testing.T) {
		fb := StructureFeedback(NewOutcome(false), texts)
		if fb.Score != 0 || fb.MaxScore != 1 {
			t.Errorf("score = %d/%d, want 0/1", fb.Score, fb.MaxScore)
		}
		want := "الإجابة غير دقيقة. راجع التعريف الأساسي للمفهوم. قسّم المسألة إلى خطوات أبسط."
		if fb.Feedback != want {
			t.Errorf("Feedback = %q, want %q", fb.Feedback, want)
		}
		if fb.NextStep != texts.FailureNext {
			t.Errorf("NextStep = %q", fb.NextStep)
		}
	})

	t.Run("incorrect with custom hints", func(t *testing.T) {
		o := NewOutcome(false)
		o.Hints = []string{"a.", "b."}
		o.Next = "retry"
		fb := StructureFeedback(o, texts)
		if fb.Feedback != texts.FailurePrefix+" a. b." || fb.NextStep != "retry" {
			t.Errorf("unexpected feedback %+v", fb)
		}
	})

	t.Run("zero max score", func(t *testing.T) {
		fb := StructureFeedback(Outcome{Correct: true, Score: 1}, texts)
		if fb.MaxScore != 1 {
			t.Errorf("MaxScore = %d, want 1", fb.MaxScore)
		}
	})
}

func TestTextsMerge(t *testing.T) {
	custom := Texts{Praise: "Well done!", DefaultHints: []string{"Check units."}}
	got := custom.Merge(DefaultTexts())

	if got.Praise != "Well done!" || got.DefaultHints[0] != "Check units." {
		t.Errorf("custom fields lost: %+v", got)
	}
	if got.FailureNext != DefaultTexts().FailureNext {
		t.Errorf("default not applied: %+v", got)
	}
}
