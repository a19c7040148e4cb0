package knowledge

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const mathBasics = `{
  "concepts": [
    {"name": "addition", "description": "adding numbers", "examples": ["2+2=4"]},
    {"name": "fractions", "examples": ["1/2 + 1/4 = 3/4"]}
  ],
  "exercises": [
    {"concept": "fractions", "level": "beginner", "prompt": "1/2 + 1/4 = ?", "answer": "3/4"},
    {"concept": "fractions", "level": "advanced", "prompt": "5/6 - 1/3 = ?", "answer": "1/2"}
  ],
  "image": "images/math.png"
}`

func writeSubject(t *testing.T, dir, subject, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, subject+".json"), []byte(body), 0o644); err != nil {
		t.Fatalf("write subject: %v", err)
	}
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	writeSubject(t, dir, "math_basics", mathBasics)
	return New(dir, nil), dir
}

func TestConcepts(t *testing.T) {
	s, _ := newTestStore(t)

	got, err := s.Concepts("math_basics")
	if err != nil {
		t.Fatalf("Concepts: %v", err)
	}
	if len(got) != 2 || got[0] != "addition" || got[1] != "fractions" {
		t.Errorf("Concepts = %v, want [addition fractions]", got)
	}
}

func TestExamples(t *testing.T) {
	s, _ := newTestStore(t)

	tests := []struct {
		concept string
		want    int
	}{
		{"addition", 1},
		{"fractions", 1},
		{"geometry", 0},
	}
	for _, tt := range tests {
		got, err := s.Examples("math_basics", tt.concept)
		if err != nil {
			t.Fatalf("Examples(%s): %v", tt.concept, err)
		}
		if len(got) != tt.want {
			t.Errorf("Examples(%s) = %v, want %d items", tt.concept, got, tt.want)
		}
	}
}

func TestExercises_ExactMatch(t *testing.T) {
	s, _ := newTestStore(t)

	tests := []struct {
		concept, level string
		want           int
	}{
		{"fractions", "beginner", 1},
		{"fractions", "advanced", 1},
		{"fractions", "intermediate", 0},
		{"Fractions", "beginner", 0},
		{"addition", "beginner", 0},
	}
	for _, tt := range tests {
		got, err := s.Exercises("math_basics", tt.concept, tt.level)
		if err != nil {
			t.Fatalf("Exercises: %v", err)
		}
		if len(got) != tt.want {
			t.Errorf("Exercises(%s, %s) = %d items, want %d", tt.concept, tt.level, len(got), tt.want)
		}
	}

	got, _ := s.Exercises("math_basics", "fractions", "beginner")
	if got[0].Prompt != "1/2 + 1/4 = ?" || got[0].Answer != "3/4" {
		t.Errorf("unexpected exercise %+v", got[0])
	}
}

func TestConceptAndImage(t *testing.T) {
	s, _ := newTestStore(t)

	c, err := s.Concept("math_basics", "addition")
	if err != nil {
		t.Fatalf("Concept: %v", err)
	}
	if c.Description != "adding numbers" {
		t.Errorf("Description = %q", c.Description)
	}

	if _, err := s.Concept("math_basics", "geometry"); !errors.Is(err, ErrConceptNotFound) {
		t.Errorf("expected ErrConceptNotFound, got %v", err)
	}

	img, err := s.Image("math_basics")
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if img != "images/math.png" {
		t.Errorf("Image = %q", img)
	}
}

func TestMissingSubject(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Concepts("history")
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Fatalf("expected ErrSubjectNotFound, got %v", err)
	}
}

func TestInvalidSubjectID(t *testing.T) {
	s, _ := newTestStore(t)

	for _, id := range []string{"", "../secrets", "a/b", "math basics"} {
		if _, err := s.Load(id); !errors.Is(err, ErrInvalidSubject) {
			t.Errorf("Load(%q) = %v, want ErrInvalidSubject", id, err)
		}
	}
}

func TestInvalidContent(t *testing.T) {
	dir := t.TempDir()
	writeSubject(t, dir, "broken", `{"concepts": "not a list"}`)
	writeSubject(t, dir, "garbage", `{not json`)
	writeSubject(t, dir, "noanswer", `{"exercises": [{"concept": "a", "level": "beginner", "prompt": "?"}]}`)
	s := New(dir, nil)

	for _, subject := range []string{"broken", "garbage", "noanswer"} {
		if _, err := s.Load(subject); !errors.Is(err, ErrInvalidContent) {
			t.Errorf("Load(%s) = %v, want ErrInvalidContent", subject, err)
		}
	}
}

func TestEmptyObjectIsValid(t *testing.T) {
	dir := t.TempDir()
	writeSubject(t, dir, "empty", `{}`)
	s := New(dir, nil)

	got, err := s.Concepts("empty")
	if err != nil {
		t.Fatalf("Concepts: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Concepts = %v, want empty", got)
	}
}

func TestCacheDoesNotReread(t *testing.T) {
	s, dir := newTestStore(t)

	if _, err := s.Concepts("math_basics"); err != nil {
		t.Fatalf("first load: %v", err)
	}

	writeSubject(t, dir, "math_basics", `{"concepts": [{"name": "changed"}]}`)

	got, err := s.Concepts("math_basics")
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if got[0] != "addition" {
		t.Errorf("expected cached content, got %v", got)
	}

	s.Invalidate("math_basics")
	got, err = s.Concepts("math_basics")
	if err != nil {
		t.Fatalf("load after invalidate: %v", err)
	}
	if len(got) != 1 || got[0] != "changed" {
		t.Errorf("expected fresh content after invalidate, got %v", got)
	}
}

func TestSubjects(t *testing.T) {
	s, dir := newTestStore(t)
	writeSubject(t, dir, "arabic", `{}`)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := s.Subjects()
	if err != nil {
		t.Fatalf("Subjects: %v", err)
	}
	if len(got) != 2 || got[0] != "arabic" || got[1] != "math_basics" {
		t.Errorf("Subjects = %v", got)
	}
}

func TestWatchInvalidatesOnWrite(t *testing.T) {
	s, dir := newTestStore(t)
	if _, err := s.Concepts("math_basics"); err != nil {
		t.Fatalf("load: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx, ready) }()
	defer func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Watch: %v", err)
		}
	}()

	select {
	case <-ready:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not start")
	}

	writeSubject(t, dir, "math_basics", `{"concepts": [{"name": "changed"}]}`)

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		got, err := s.Concepts("math_basics")
		if err == nil && len(got) == 1 && got[0] == "changed" {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("cache was not invalidated after the file changed")
}
