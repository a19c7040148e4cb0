package session

import (
	"bytes"
	"encoding/json"
)

// Event types stored in a record's history.
const (
	EventQA       = "qa"
	EventExercise = "exercise"
)

// DefaultLevel is the level of a learner with no history.
const DefaultLevel = "beginner"

// Event is one entry in a learner's history. Which fields are meaningful
// depends on Type: qa events carry Text and Related, exercise events carry
// Concept and Correct. Both carry the Level at the time of the event.
type Event struct {
	Type    string   `json:"type"`
	Text    string   `json:"text,omitempty"`
	Related []string `json:"related,omitempty"`
	Concept string   `json:"concept,omitempty"`
	Level   string   `json:"level"`
	Correct bool     `json:"correct,omitempty"`
}

type qaEvent struct {
	Type    string   `json:"type"`
	Text    string   `json:"text"`
	Related []string `json:"related"`
	Level   string   `json:"level"`
}

type exerciseEvent struct {
	Type    string `json:"type"`
	Concept string `json:"concept"`
	Level   string `json:"level"`
	Correct bool   `json:"correct"`
}

// MarshalJSON writes only the fields that belong to the event's type, so
// an incorrect exercise keeps its "correct": false.
func (e Event) MarshalJSON() ([]byte, error) {
	switch e.Type {
	case EventQA:
		related := e.Related
		if related == nil {
			related = []string{}
		}
		return marshalUnescaped(qaEvent{Type: e.Type, Text: e.Text, Related: related, Level: e.Level})
	case EventExercise:
		return marshalUnescaped(exerciseEvent{Type: e.Type, Concept: e.Concept, Level: e.Level, Correct: e.Correct})
	default:
		type plain Event
		return marshalUnescaped(plain(e))
	}
}

// Stats holds cumulative exercise counters.
type Stats struct {
	Correct  int `json:"correct"`
	Attempts int `json:"attempts"`
}

// Record adds one graded attempt.
func (s *Stats) Record(correct bool) {
	s.Attempts++
	if correct {
		s.Correct++
	}
}

// Accuracy returns Correct/Attempts, or 0 with no attempts.
func (s Stats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// Record is the persisted state of one learner.
type Record struct {
	History []Event `json:"history"`
	Stats   Stats   `json:"stats"`
	Level   string  `json:"level"`
}

// NewRecord returns the record of a learner who has never been seen.
func NewRecord() *Record {
	return &Record{History: []Event{}, Level: DefaultLevel}
}

// AppendQA records an answered question.
func (r *Record) AppendQA(text string, related []string, level string) {
	r.History = append(r.History, Event{
		Type:    EventQA,
		Text:    text,
		Related: append([]string(nil), related...),
		Level:   level,
	})
}

// AppendExercise records a graded exercise and updates Stats to match.
func (r *Record) AppendExercise(concept, level string, correct bool) {
	r.History = append(r.History, Event{
		Type:    EventExercise,
		Concept: concept,
		Level:   level,
		Correct: correct,
	})
	r.Stats.Record(correct)
}

// normalize fills in defaults for fields a hand-edited or older file may lack.
func (r *Record) normalize() {
	if r.History == nil {
		r.History = []Event{}
	}
	if r.Level == "" {
		r.Level = DefaultLevel
	}
}

// Encode writes the record as two-space indented JSON without escaping
// non-ASCII or HTML characters.
func Encode(r *Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses a record and fills in defaults for missing fields.
func Decode(data []byte) (*Record, error) {
	r := NewRecord()
	if err := json.Unmarshal(data, r); err != nil {
		return nil, err
	}
	r.normalize()
	return r, nil
}

func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
