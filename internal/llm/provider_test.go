package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first answer", Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Text: "second answer"},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Text != "first answer" {
		t.Fatalf("expected 'first answer', got %q", resp1.Text)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Text != "second answer" {
		t.Fatalf("expected 'second answer', got %q", resp2.Text)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_Fallback(t *testing.T) {
	mock := NewMockProvider()
	mock.Fallback = "always"

	for range 3 {
		resp, err := mock.Generate(context.Background(), Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "always" {
			t.Fatalf("expected fallback text, got %q", resp.Text)
		}
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "x"})

	_, _ = mock.Generate(context.Background(), Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.LastCall().System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.LastCall().System)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestTemplateProvider_IgnoresInput(t *testing.T) {
	p := NewTemplateProvider("")

	a, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "what are fractions?"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := p.Generate(context.Background(), Request{System: "other", Temperature: 0.9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Text != b.Text {
		t.Fatalf("expected identical output, got %q and %q", a.Text, b.Text)
	}
	if a.Text != DefaultTemplate {
		t.Fatalf("expected default template, got %q", a.Text)
	}
	if p.ModelID() != "dummy" {
		t.Fatalf("expected model 'dummy', got %q", p.ModelID())
	}
}

func TestTemplateProvider_CustomText(t *testing.T) {
	p := NewTemplateProvider("Explanation:\n- definition\n- example")
	got, err := Complete(context.Background(), p, "q", "", 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "Explanation:") {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestComplete_BuildsSingleTurnRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "done"})

	got, err := Complete(context.Background(), mock, "prompt text", "system text", 0.3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "done" {
		t.Fatalf("expected 'done', got %q", got)
	}

	req := mock.LastCall()
	if req.System != "system text" {
		t.Errorf("system = %q", req.System)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != RoleUser || req.Messages[0].Content != "prompt text" {
		t.Errorf("unexpected messages: %+v", req.Messages)
	}
	if req.Temperature != 0.3 {
		t.Errorf("temperature = %v", req.Temperature)
	}
}

func TestComplete_WrapsError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})

	_, err := Complete(context.Background(), mock, "p", "", 0)
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got %v", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, PurposeExplain)
	if p := PurposeFrom(ctx); p != PurposeExplain {
		t.Fatalf("expected %q, got %q", PurposeExplain, p)
	}
}
