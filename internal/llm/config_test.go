package llm

import (
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty provider falls back", Config{}, false},
		{"dummy", Config{Provider: "dummy"}, false},
		{"unknown falls back", Config{Provider: "unknown"}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "OpenAI", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openrouter without key", Config{Provider: "openrouter"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Normalized(t *testing.T) {
	tests := map[string]string{
		"":           ProviderDummy,
		"dummy":      ProviderDummy,
		"  Dummy ":   ProviderDummy,
		"ollama":     ProviderDummy,
		"ANTHROPIC":  ProviderAnthropic,
		"gemini":     ProviderGemini,
		"openrouter": ProviderOpenRouter,
	}
	for in, want := range tests {
		if got := (Config{Provider: in}).Normalized(); got != want {
			t.Errorf("Normalized(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TUTORLY_LLM_PROVIDER", "openai")
	t.Setenv("TUTORLY_OPENAI_API_KEY", "sk-env")
	t.Setenv("TUTORLY_OPENAI_MODEL", "gpt-4o")
	t.Setenv("TUTORLY_LLM_TIMEOUT", "5s")
	t.Setenv("TUTORLY_LLM_TEMPLATE", "canned")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-env" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("unexpected openai config: %+v", cfg.OpenAI)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
	if cfg.Template != "canned" {
		t.Errorf("template = %q", cfg.Template)
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("TUTORLY_LLM_PROVIDER", "")
	cfg := ConfigFromEnv()
	if cfg.Provider != ProviderDummy {
		t.Fatalf("expected dummy default, got %q", cfg.Provider)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Fatalf("expected 3 retry attempts, got %d", cfg.Retry.MaxAttempts)
	}
}
