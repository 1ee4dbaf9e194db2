package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/moodlens/moodlens/internal/generation"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiClient implements generation.Generator on top of the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context) (*GeminiClient, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}

	slog.Info("[GeminiClient] Gemini client initialized", slog.String("model", model))
	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Close() {
	if c.client != nil {
		if err := c.client.Close(); err != nil {
			slog.Warn("[GeminiClient] Error closing client",
				slog.String("error", err.Error()))
		}
	}
}

func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, format generation.ResponseFormat) (generation.Result, error) {
	model := c.client.GenerativeModel(c.model)

	temp := float32(0.7)
	maxTokens := int32(1000)
	mimeType := "text/plain"
	if format == generation.FormatJSON {
		mimeType = "application/json"
	}
	model.GenerationConfig = genai.GenerationConfig{
		Temperature:      &temp,
		MaxOutputTokens:  &maxTokens,
		ResponseMIMEType: mimeType,
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return generation.Result{}, fmt.Errorf("gemini generation request failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return generation.Result{}, fmt.Errorf("no response candidates from Gemini")
	}

	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			builder.WriteString(string(txt))
		}
	}
	raw := builder.String()
	if raw == "" {
		return generation.Result{}, fmt.Errorf("empty response from Gemini")
	}

	result := generation.Result{RawContent: raw}
	if format == generation.FormatJSON {
		cleaned := generation.CleanJSON(raw)
		if cleaned == "" || !json.Valid([]byte(cleaned)) {
			return generation.Result{}, fmt.Errorf("gemini response is not valid JSON")
		}
		result.Content = json.RawMessage(cleaned)
	}
	return result, nil
}
