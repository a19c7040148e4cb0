package session

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewRecord_Defaults(t *testing.T) {
	r := NewRecord()
	if r.Level != "beginner" {
		t.Errorf("Level = %q, want beginner", r.Level)
	}
	if r.History == nil || len(r.History) != 0 {
		t.Errorf("History = %v, want empty non-nil slice", r.History)
	}
	if r.Stats != (Stats{}) {
		t.Errorf("Stats = %+v, want zero", r.Stats)
	}
}

func TestNewRecord_EncodesDefaultShape(t *testing.T) {
	data, err := Encode(NewRecord())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if h, ok := got["history"].([]any); !ok || len(h) != 0 {
		t.Errorf("history = %v, want []", got["history"])
	}
	stats := got["stats"].(map[string]any)
	if stats["correct"] != 0.0 || stats["attempts"] != 0.0 {
		t.Errorf("stats = %v", stats)
	}
}

func TestAppendExercise_KeepsStatsInSync(t *testing.T) {
	r := NewRecord()
	r.AppendQA("what is a fraction?", []string{"fractions"}, "beginner")
	r.AppendExercise("fractions", "beginner", true)
	r.AppendExercise("fractions", "beginner", false)
	r.AppendExercise("addition", "beginner", true)

	var attempts, correct int
	for _, e := range r.History {
		if e.Type == EventExercise {
			attempts++
			if e.Correct {
				correct++
			}
		}
	}
	if r.Stats.Attempts != attempts || r.Stats.Correct != correct {
		t.Fatalf("stats %+v, history has %d/%d", r.Stats, correct, attempts)
	}
	if got := r.Stats.Accuracy(); got < 0.66 || got > 0.67 {
		t.Errorf("Accuracy() = %v", got)
	}
}

func TestEventMarshal_PerType(t *testing.T) {
	tests := []struct {
		name    string
		event   Event
		want    []string
		notWant []string
	}{
		{
			name:    "incorrect exercise keeps correct field",
			event:   Event{Type: EventExercise, Concept: "fractions", Level: "beginner"},
			want:    []string{`"correct":false`, `"concept":"fractions"`},
			notWant: []string{`"text"`, `"related"`},
		},
		{
			name:    "qa without related concepts",
			event:   Event{Type: EventQA, Text: "x < y", Level: "beginner"},
			want:    []string{`"related":[]`, `"text":"x < y"`},
			notWant: []string{`"correct"`, `"concept"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.event)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			s := string(data)
			for _, w := range tt.want {
				if !strings.Contains(s, w) {
					t.Errorf("%s missing %s", s, w)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(s, nw) {
					t.Errorf("%s should not contain %s", s, nw)
				}
			}
		})
	}
}

func TestDecode_FillsMissingFields(t *testing.T) {
	r, err := Decode([]byte(`{"stats":{"correct":1,"attempts":2}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r.Level != DefaultLevel || r.History == nil {
		t.Errorf("defaults not applied: %+v", r)
	}
	if r.Stats.Attempts != 2 || r.Stats.Correct != 1 {
		t.Errorf("stats = %+v", r.Stats)
	}
}
