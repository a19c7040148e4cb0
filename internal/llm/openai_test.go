package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

// chatServer answers every chat completion with reply and finish, and
// hands the decoded request to inspect.
func chatServer(t *testing.T, reply, finish string, inspect func(r *http.Request, body map[string]any)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if inspect != nil {
			inspect(r, body)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-tutor",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   body["model"],
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": reply},
				"finish_reason": finish,
			}},
			"usage": map[string]any{
				"prompt_tokens":     12,
				"completion_tokens": 8,
				"total_tokens":      20,
			},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func openAIAt(url, model string) *OpenAIProvider {
	config := openai.DefaultConfig("test-key")
	config.BaseURL = url + "/v1"
	return &OpenAIProvider{client: openai.NewClientWithConfig(config), model: model}
}

func TestOpenAIProvider_SendsSystemBeforePrompt(t *testing.T) {
	var messages []any
	server := chatServer(t, "Line up the denominators first.", "stop", func(_ *http.Request, body map[string]any) {
		messages, _ = body["messages"].([]any)
		if body["model"] != "gpt-4o-mini" {
			t.Errorf("model = %v", body["model"])
		}
	})

	p := openAIAt(server.URL, "gpt-4o-mini")
	text, err := Complete(context.Background(), p, "How do I add 1/2 and 1/3?", "Answer in one sentence.", 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Line up the denominators first." {
		t.Errorf("text = %q", text)
	}

	if len(messages) != 2 {
		t.Fatalf("expected system and user messages, got %d", len(messages))
	}
	first := messages[0].(map[string]any)
	second := messages[1].(map[string]any)
	if first["role"] != "system" || first["content"] != "Answer in one sentence." {
		t.Errorf("first message = %v", first)
	}
	if second["role"] != "user" || second["content"] != "How do I add 1/2 and 1/3?" {
		t.Errorf("second message = %v", second)
	}
}

func TestOpenAIProvider_OmitsEmptySystem(t *testing.T) {
	var count int
	server := chatServer(t, "ok", "stop", func(_ *http.Request, body map[string]any) {
		msgs, _ := body["messages"].([]any)
		count = len(msgs)
	})

	p := openAIAt(server.URL, "gpt-4o")
	if _, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected only the user message, got %d", count)
	}
}

func TestOpenAIProvider_UsageAndStopReason(t *testing.T) {
	server := chatServer(t, "partial expl", "length", nil)

	resp, err := openAIAt(server.URL, "gpt-4o-mini").Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "explain"}},
		MaxTokens: 8,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StopReason != "max_tokens" {
		t.Errorf("stop reason = %q, want max_tokens", resp.StopReason)
	}
	if resp.Usage.TotalTokens != 20 || resp.Usage.InputTokens != 12 {
		t.Errorf("usage = %+v", resp.Usage)
	}
}

func TestOpenAIProvider_EmptyReply(t *testing.T) {
	server := chatServer(t, "", "stop", nil)

	_, err := openAIAt(server.URL, "gpt-4o-mini").Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "explain"}},
	})
	var empty *ErrEmptyResponse
	if !errors.As(err, &empty) {
		t.Fatalf("expected ErrEmptyResponse, got %T (%v)", err, err)
	}
}

func TestOpenAIProvider_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"rate limited", http.StatusTooManyRequests, func(err error) bool {
			var rl *ErrRateLimit
			return errors.As(err, &rl)
		}},
		{"server error", http.StatusInternalServerError, func(err error) bool {
			var un *ErrProviderUnavailable
			return errors.As(err, &un)
		}},
		{"bad key", http.StatusUnauthorized, func(err error) bool {
			var un *ErrProviderUnavailable
			return errors.As(err, &un)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"type": "error", "message": http.StatusText(tt.status)},
				})
			}))
			defer server.Close()

			_, err := openAIAt(server.URL, "gpt-4o-mini").Generate(context.Background(), Request{
				Messages: []Message{{Role: RoleUser, Content: "x"}},
			})
			if err == nil || !tt.check(err) {
				t.Fatalf("unexpected error type %T (%v)", err, err)
			}
		})
	}
}

func TestNewOpenAIProvider_ResolvesFriendlyNames(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "gpt-4o" {
		t.Errorf("model = %q", p.ModelID())
	}

	if _, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o"}); err == nil {
		t.Error("expected error without API key")
	}
}
