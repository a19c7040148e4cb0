package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/tutorly/internal/store"
)

type recordingRepo struct {
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestNewProvider_FallsBackToTemplate(t *testing.T) {
	for _, name := range []string{"", "dummy", "DUMMY", "something-else"} {
		t.Run(name, func(t *testing.T) {
			p, err := NewProvider(context.Background(), Config{Provider: name}, nil, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, ok := p.(*TemplateProvider); !ok {
				t.Fatalf("expected *TemplateProvider, got %T", p)
			}
		})
	}
}

func TestNewProvider_MockAnswersEveryCall(t *testing.T) {
	repo := &recordingRepo{}
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		text, err := Complete(context.Background(), p, "hi", "", 0.2)
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if text != mockFallback {
			t.Errorf("call %d text = %q, want %q", i, text, mockFallback)
		}
	}
	if len(repo.events) != 3 || repo.events[0].Provider != ProviderMock {
		t.Errorf("expected 3 mock events, got %+v", repo.events)
	}
}

func TestNewProvider_WarnsOnUnknownName(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	_, err := NewProvider(context.Background(), Config{Provider: "ollama"}, zap.New(core), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected 1 warning, got %d", logs.Len())
	}
}

func TestNewProvider_TemplateText(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Template: "custom"}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text, _ := Complete(context.Background(), p, "anything", "", 0)
	if text != "custom" {
		t.Fatalf("expected custom template, got %q", text)
	}
}

func TestNewProvider_MissingKey(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "anthropic"}, nil, nil)
	if err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestNewProvider_WrapsNetworkProviders(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	cfg.OpenAI.APIKey = "sk-test"

	p, err := NewProvider(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*TimeoutProvider); !ok {
		t.Fatalf("expected *TimeoutProvider, got %T", p)
	}
	if p.ModelID() != "gpt-4o-mini" {
		t.Fatalf("model = %q", p.ModelID())
	}
}

func TestLoggingProvider_RecordsEvents(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(
		MockResponse{Text: "hello", Usage: Usage{InputTokens: 3, OutputTokens: 2}},
		MockResponse{Err: errors.New("boom")},
	)
	p := WithLogging(mock, ProviderOpenAI, zap.NewNop(), repo)

	ctx := WithLearner(WithPurpose(context.Background(), PurposeFeedback), "amira")
	if _, err := p.Generate(ctx, Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "hi"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(repo.events))
	}
	ok := repo.events[0]
	if !ok.Success || ok.Purpose != PurposeFeedback || ok.InputTokens != 3 || ok.ResponseBody != "hello" {
		t.Errorf("unexpected success event: %+v", ok)
	}
	if ok.Provider != ProviderOpenAI || ok.Model != "mock" || ok.UserID != "amira" {
		t.Errorf("unexpected attribution: provider=%q model=%q user=%q", ok.Provider, ok.Model, ok.UserID)
	}
	if ok.RequestBody != "[system]\nsys\n\n[user]\nhi\n\n" {
		t.Errorf("unexpected request body %q", ok.RequestBody)
	}
	failed := repo.events[1]
	if failed.Success || failed.ErrorMessage != "boom" {
		t.Errorf("unexpected failure event: %+v", failed)
	}
}

func TestLoggingProvider_RepoErrorDoesNotFailRequest(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(MockResponse{Text: "ok"}), ProviderMock, nil, repo)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ok" {
		t.Fatalf("unexpected text %q", resp.Text)
	}
}

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestWithTimeout(t *testing.T) {
	p := WithTimeout(slowProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}

	if WithTimeout(slowProvider{}, 0) != (slowProvider{}) {
		t.Fatal("expected zero timeout to return the provider unchanged")
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	if got := c.Cost(1_000_000, 1_000_000); got != 0.75 {
		t.Fatalf("cost = %v, want 0.75", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}
