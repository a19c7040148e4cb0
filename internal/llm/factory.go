package llm

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/tutorly/internal/store"
)

const mockFallback = "mock response"

// NewProvider creates a Provider from configuration.
//
// Network providers are wrapped with timeout, retry and logging middleware.
// The dummy provider is returned bare: it cannot fail and has nothing worth
// recording. The mock provider answers every call with a fixed text and is
// only logged. eventRepo may be nil, in which case calls are only logged.
func NewProvider(ctx context.Context, cfg Config, logger *zap.Logger, eventRepo store.EventRepo) (Provider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	name := cfg.Normalized()
	if requested := strings.ToLower(strings.TrimSpace(cfg.Provider)); requested != "" && requested != name {
		logger.Warn("unknown completion provider, using dummy", zap.String("requested", cfg.Provider))
	}

	var base Provider
	var err error

	switch name {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		m := NewMockProvider()
		m.Fallback = mockFallback
		return WithLogging(m, name, logger, eventRepo), nil
	default:
		return NewTemplateProvider(cfg.Template), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", name, err)
	}

	// caller → timeout → retry → logging → base
	logged := WithLogging(base, name, logger, eventRepo)
	retried := WithRetry(logged, cfg.Retry)
	return WithTimeout(retried, cfg.Timeout), nil
}
