// Package tutor orchestrates knowledge lookup, completion calls, heuristics
// and session persistence behind four learner-facing operations.
package tutor

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/tutorly/internal/heuristics"
	"github.com/abhisek/tutorly/internal/knowledge"
	"github.com/abhisek/tutorly/internal/llm"
	"github.com/abhisek/tutorly/internal/session"
)

// Knowledge is the read side of the subject content the agent needs.
type Knowledge interface {
	Concepts(subject string) ([]string, error)
	Examples(subject, concept string) ([]string, error)
	Exercises(subject, concept, level string) ([]knowledge.PoolExercise, error)
}

// Options configures an Agent. Knowledge, Provider and Sessions are required.
type Options struct {
	Knowledge Knowledge
	Provider  llm.Provider
	Sessions  session.Store
	Config    Config

	// Rand picks pool exercises. Nil seeds one from the clock.
	Rand *rand.Rand

	Logger *zap.Logger
}

// Agent runs tutoring operations. It is safe for concurrent use, but
// concurrent writes for the same user are last-write-wins.
type Agent struct {
	kb       Knowledge
	provider llm.Provider
	sessions session.Store
	cfg      Config
	logger   *zap.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

// New creates an Agent.
func New(opts Options) (*Agent, error) {
	if opts.Knowledge == nil {
		return nil, errors.New("tutor: knowledge store is required")
	}
	if opts.Provider == nil {
		return nil, errors.New("tutor: completion provider is required")
	}
	if opts.Sessions == nil {
		return nil, errors.New("tutor: session store is required")
	}

	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Agent{
		kb:       opts.Knowledge,
		provider: opts.Provider,
		sessions: opts.Sessions,
		cfg:      opts.Config.withDefaults(),
		logger:   logger,
		rng:      rng,
	}, nil
}

// ProgressSummary formats attempts, correct answers and the level
// estimated from history. It does not modify the record.
func (a *Agent) ProgressSummary(ctx context.Context, userID string) (string, error) {
	rec, err := a.sessions.Load(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	return a.summary(rec), nil
}

func (a *Agent) summary(rec *session.Record) string {
	level := heuristics.EstimateLevel(rec.History)
	return fmt.Sprintf(a.cfg.Prompts.ProgressFormat, rec.Stats.Attempts, rec.Stats.Correct, level)
}

// Progress returns the structured form of ProgressSummary with a
// per-concept breakdown in order of first attempt.
func (a *Agent) Progress(ctx context.Context, userID string) (*Progress, error) {
	rec, err := a.sessions.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	p := &Progress{
		Summary:  a.summary(rec),
		Attempts: rec.Stats.Attempts,
		Correct:  rec.Stats.Correct,
		Accuracy: rec.Stats.Accuracy(),
		Level:    heuristics.EstimateLevel(rec.History),
		Concepts: []ConceptProgress{},
	}

	index := make(map[string]int)
	for _, e := range rec.History {
		switch e.Type {
		case session.EventQA:
			p.Questions++
		case session.EventExercise:
			i, ok := index[e.Concept]
			if !ok {
				i = len(p.Concepts)
				index[e.Concept] = i
				p.Concepts = append(p.Concepts, ConceptProgress{Concept: e.Concept})
			}
			p.Concepts[i].Attempts++
			if e.Correct {
				p.Concepts[i].Correct++
			}
		}
	}
	return p, nil
}

// HandleQuestion explains a free-text question at the learner's level and
// records it in their history. The level is estimated before the question
// is appended.
func (a *Agent) HandleQuestion(ctx context.Context, userID, subject, text string) (*QAResult, error) {
	rec, err := a.sessions.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	concepts, err := a.kb.Concepts(subject)
	if err != nil {
		return nil, err
	}
	related := heuristics.ExtractConcepts(text, concepts)
	level := heuristics.EstimateLevel(rec.History)

	p := a.cfg.Prompts
	ctx = llm.WithLearner(llm.WithPurpose(ctx, llm.PurposeExplain), userID)
	explanation, err := llm.Complete(ctx, a.provider,
		buildExplainMessage(p, text, related, level), p.ExplainSystem, a.cfg.ExplainTemperature)
	if err != nil {
		return nil, fmt.Errorf("explain: %w", err)
	}

	rec.AppendQA(text, related, string(level))
	rec.Level = string(level)
	if err := a.sessions.Save(ctx, userID, rec); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	a.logger.Debug("answered question",
		zap.String("user", userID),
		zap.String("subject", subject),
		zap.Strings("concepts", related),
		zap.String("level", string(level)))

	return &QAResult{
		Explanation:    explanation,
		Concepts:       related,
		EstimatedLevel: level,
	}, nil
}

// GenerateExercise picks a pool exercise matching concept and level, or
// synthesizes one from the concept's first example when the pool is
// empty. It does not touch session state.
func (a *Agent) GenerateExercise(ctx context.Context, subject, concept, level string) (*Exercise, error) {
	pool, err := a.kb.Exercises(subject, concept, level)
	if err != nil {
		return nil, err
	}

	ex := &Exercise{
		ID:      uuid.NewString(),
		Subject: subject,
		Concept: concept,
		Level:   level,
	}

	if len(pool) > 0 {
		chosen := pool[a.pick(len(pool))]
		ex.Prompt = chosen.Prompt
		ex.Answer = chosen.Answer
		return ex, nil
	}

	examples, err := a.kb.Examples(subject, concept)
	if err != nil {
		return nil, err
	}
	p := a.cfg.Prompts
	example := p.PlaceholderExample
	if len(examples) > 0 {
		example = examples[0]
	}
	ex.Prompt = p.SynthesizedPrefix + example
	ex.Answer = p.PlaceholderAnswer
	ex.Meta.Generated = true

	a.logger.Debug("synthesized exercise",
		zap.String("subject", subject),
		zap.String("concept", concept),
		zap.String("level", level))
	return ex, nil
}

func (a *Agent) pick(n int) int {
	a.rngMu.Lock()
	defer a.rngMu.Unlock()
	return a.rng.IntN(n)
}

// GradeAnswer compares the answer to the expected one after trimming and
// lower-casing both. An empty expected or submitted answer is always
// incorrect. Provider commentary is appended to the structured feedback,
// and the attempt is recorded in the learner's history.
func (a *Agent) GradeAnswer(ctx context.Context, ex Exercise, userAnswer, userID string) (*GradeResult, error) {
	expected := normalizeAnswer(ex.Answer)
	got := normalizeAnswer(userAnswer)
	correct := expected != "" && got != "" && expected == got

	p := a.cfg.Prompts
	outcome := heuristics.NewOutcome(correct)
	outcome.Hints = p.GradeHints
	outcome.Next = p.GradeNext

	ctx = llm.WithLearner(llm.WithPurpose(ctx, llm.PurposeFeedback), userID)
	commentary, err := llm.Complete(ctx, a.provider,
		buildGradeMessage(p, ex, userAnswer), p.GradeSystem, a.cfg.FeedbackTemperature)
	if err != nil {
		return nil, fmt.Errorf("feedback: %w", err)
	}

	fb := heuristics.StructureFeedback(outcome, a.cfg.Texts)

	rec, err := a.sessions.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	rec.AppendExercise(ex.Concept, ex.Level, correct)
	if err := a.sessions.Save(ctx, userID, rec); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	a.logger.Debug("graded answer",
		zap.String("user", userID),
		zap.String("concept", ex.Concept),
		zap.Bool("correct", correct))

	return &GradeResult{
		Correct:  correct,
		Score:    fb.Score,
		MaxScore: fb.MaxScore,
		Feedback: fb.Feedback + "\n\n" + p.CommentaryHeading + "\n" + commentary,
		NextStep: fb.NextStep,
	}, nil
}
