package clients

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/moodlens/moodlens/internal/generation"
)

// NewGeneratorFromEnv picks the generation provider from GENERATION_PROVIDER
// ("gemini" by default, "openai" as an alternative). The returned closer is
// always safe to call.
func NewGeneratorFromEnv(ctx context.Context) (generation.Generator, func(), error) {
	provider := strings.ToLower(os.Getenv("GENERATION_PROVIDER"))
	switch provider {
	case "openai":
		client, err := NewOpenAIClient()
		if err != nil {
			return nil, func() {}, err
		}
		return client, func() {}, nil
	case "", "gemini":
		client, err := NewGeminiClient(ctx)
		if err != nil {
			return nil, func() {}, err
		}
		return client, client.Close, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown generation provider %q", provider)
	}
}
