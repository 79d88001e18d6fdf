package llm

import (
	"context"
	"fmt"

	"github.com/elliotskunk/stumble/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and call-logging middleware.
func NewProvider(ctx context.Context, cfg Config, log store.CallLog) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller → retry → logging → base, so each
	// attempt is logged individually.
	logged := WithLogging(base, cfg.Provider, log)
	return WithRetry(logged, cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from STUMBLE_ env vars, falling
// back to probing the standard provider key variables.
func NewProviderFromEnv(ctx context.Context, log store.CallLog) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, log)
}
