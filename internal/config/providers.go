package config

import (
	"context"

	ai "resume-builder/pkg/ai"
)

// AIClient builds the configured AI client. The returned close function
// releases provider resources and is never nil. With AI_PROVIDER=none the
// client is nil.
func (c *Config) AIClient(ctx context.Context) (*ai.Client, func() error, error) {
	noop := func() error { return nil }

	switch c.AIProvider {
	case ProviderNone:
		return nil, noop, nil
	case ProviderGemini:
		g, err := ai.NewGeminiProvider(ctx, c.GeminiAPIKey, c.GeminiModel)
		if err != nil {
			return nil, noop, err
		}
		return ai.NewClient(g), g.Close, nil
	default:
		return ai.NewClient(ai.NewServiceProvider(c.AIServiceURL, c.AITimeout)), noop, nil
	}
}
