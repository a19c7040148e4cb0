package llm

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestNewOpenRouterProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "meta-llama/llama-3-8b"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestOpenRouterProvider_ModelPassThrough(t *testing.T) {
	// Names that look like friendly aliases are still sent verbatim.
	for _, model := range []string{"anthropic/claude-3-haiku", "gpt-4o"} {
		p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: model})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != model {
			t.Errorf("model = %q, want %q", p.ModelID(), model)
		}
	}
}

func TestOpenRouterProvider_UsesCompatibleWireFormat(t *testing.T) {
	var path, auth string
	server := chatServer(t, "Fractions need a common denominator.", "stop", func(r *http.Request, body map[string]any) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
	})

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "google/gemini-2.0-flash-exp",
		BaseURL: server.URL + "/api/v1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, err := Complete(context.Background(), p, "why?", "", 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Fractions need a common denominator." {
		t.Errorf("text = %q", text)
	}
	if !strings.HasSuffix(path, "/api/v1/chat/completions") {
		t.Errorf("path = %q", path)
	}
	if auth != "Bearer sk-or-test" {
		t.Errorf("authorization = %q", auth)
	}
}
