package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/moodlens/moodlens/internal/generation"
)

const (
	defaultOpenAIModel   = openai.GPT3Dot5Turbo1106
	openAIRequestTimeout = 60 * time.Second
)

// OpenAIClient implements generation.Generator through chat completions.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient() (*OpenAIClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	config := openai.DefaultConfig(apiKey)
	config.HTTPClient = &http.Client{Timeout: openAIRequestTimeout}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultOpenAIModel
	}

	slog.Info("[OpenAIClient] OpenAI client initialized",
		slog.String("model", model),
		slog.Duration("timeout", openAIRequestTimeout))
	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

func (c *OpenAIClient) GenerateContent(ctx context.Context, prompt string, format generation.ResponseFormat) (generation.Result, error) {
	// JSON-object response mode is not used because some prompts expect a
	// top-level array; the prompt plus fence cleaning covers both shapes.
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return generation.Result{}, fmt.Errorf("openai generation request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return generation.Result{}, fmt.Errorf("no response choices from OpenAI")
	}

	raw := resp.Choices[0].Message.Content
	if raw == "" {
		return generation.Result{}, fmt.Errorf("empty response from OpenAI")
	}

	result := generation.Result{RawContent: raw}
	if format == generation.FormatJSON {
		cleaned := generation.CleanJSON(raw)
		if cleaned == "" || !json.Valid([]byte(cleaned)) {
			return generation.Result{}, fmt.Errorf("openai response is not valid JSON")
		}
		result.Content = json.RawMessage(cleaned)
	}
	return result, nil
}
