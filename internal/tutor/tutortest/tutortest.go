// Package tutortest builds Agents over temporary content and sessions
// for tests in other packages.
package tutortest

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/tutorly/internal/knowledge"
	"github.com/abhisek/tutorly/internal/llm"
	"github.com/abhisek/tutorly/internal/session"
	"github.com/abhisek/tutorly/internal/tutor"
)

// Subject is the id of the fixture subject written by New.
const Subject = "math_basics"

// Content is the fixture subject. fractions has a single beginner pool
// exercise; addition has none and falls back to its first example.
const Content = `{
  "concepts": [
    {"name": "addition", "description": "adding numbers", "examples": ["2 + 2 = 4"]},
    {"name": "fractions", "examples": ["1/2 + 1/2 = 1"]}
  ],
  "exercises": [
    {"concept": "fractions", "level": "beginner", "prompt": "1/2 + 1/4 = ?", "answer": "3/4"}
  ]
}`

// Env is a test agent together with the stores behind it.
type Env struct {
	Agent     *tutor.Agent
	Knowledge *knowledge.Store
	Sessions  *session.FileStore
	Provider  *llm.MockProvider
}

// New returns an Env whose provider answers every call with "mock reply".
func New(t testing.TB) *Env {
	t.Helper()

	dataDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dataDir, Subject+".json"), []byte(Content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	kb := knowledge.New(dataDir, nil)

	sessions, err := session.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("session store: %v", err)
	}

	provider := llm.NewMockProvider()
	provider.Fallback = "mock reply"

	agent, err := tutor.New(tutor.Options{
		Knowledge: kb,
		Provider:  provider,
		Sessions:  sessions,
		Config:    tutor.DefaultConfig(),
		Rand:      rand.New(rand.NewPCG(1, 2)),
	})
	if err != nil {
		t.Fatalf("new agent: %v", err)
	}

	return &Env{Agent: agent, Knowledge: kb, Sessions: sessions, Provider: provider}
}
