package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/moodlens/moodlens/internal/generation"
	"github.com/moodlens/moodlens/internal/models"
	"github.com/moodlens/moodlens/internal/sentiment"
)

// ErrMalformedResponse marks a remote payload that failed shape validation.
// The adapter never guesses missing values; a malformed payload is the
// caller's signal to fall back.
var ErrMalformedResponse = errors.New("malformed remote analysis response")

// emotionSumTolerance bounds how far a remote emotion vector may drift from
// summing to 1.0 before renormalization is refused and the payload rejected.
const emotionSumTolerance = 0.25

// RemoteAnalyzer turns raw text into a SentimentResult through the remote
// generation collaborator. It performs exactly one structured-analysis request
// and one salient-words request per call, with no retries of its own.
type RemoteAnalyzer struct {
	gen generation.Generator
}

func NewRemoteAnalyzer(gen generation.Generator) *RemoteAnalyzer {
	return &RemoteAnalyzer{gen: gen}
}

type remoteSentimentPayload struct {
	Score    *float64            `json:"score"`
	Level    *string             `json:"level"`
	Emotions map[string]*float64 `json:"emotions"`
}

func (r *RemoteAnalyzer) Analyze(ctx context.Context, text string) (models.SentimentResult, error) {
	promptText := sentiment.PlainText(text)

	result, err := r.gen.GenerateContent(ctx, sentimentPrompt(promptText), generation.FormatJSON)
	if err != nil {
		return models.SentimentResult{}, fmt.Errorf("remote analysis request failed: %w", err)
	}

	var payload remoteSentimentPayload
	if err := json.Unmarshal(result.Content, &payload); err != nil {
		return models.SentimentResult{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	parsed, err := validatePayload(payload)
	if err != nil {
		return models.SentimentResult{}, err
	}

	parsed.ImportantWords = r.importantWords(ctx, promptText)
	return parsed, nil
}

// validatePayload enforces the shape contract: numeric score, enum level, and
// all six canonical emotion fields present and numeric. The emotion vector is
// renormalized to sum to 1.0 when it deviates within tolerance.
func validatePayload(payload remoteSentimentPayload) (models.SentimentResult, error) {
	if payload.Score == nil {
		return models.SentimentResult{}, fmt.Errorf("%w: missing score", ErrMalformedResponse)
	}
	score := *payload.Score
	if math.IsNaN(score) || math.IsInf(score, 0) || score < -1 || score > 1 {
		return models.SentimentResult{}, fmt.Errorf("%w: score %v out of range", ErrMalformedResponse, score)
	}

	if payload.Level == nil {
		return models.SentimentResult{}, fmt.Errorf("%w: missing level", ErrMalformedResponse)
	}
	level := models.StressLevel(*payload.Level)
	if !level.Valid() {
		return models.SentimentResult{}, fmt.Errorf("%w: unknown level %q", ErrMalformedResponse, *payload.Level)
	}

	var vals [6]float64
	for i, name := range models.EmotionNames {
		v, ok := payload.Emotions[name]
		if !ok || v == nil {
			return models.SentimentResult{}, fmt.Errorf("%w: missing emotion %q", ErrMalformedResponse, name)
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 || *v > 1 {
			return models.SentimentResult{}, fmt.Errorf("%w: emotion %q value %v out of range", ErrMalformedResponse, name, *v)
		}
		vals[i] = *v
	}

	emotions := models.EmotionVectorFromValues(vals)
	sum := emotions.Sum()
	if sum <= 0 || math.Abs(sum-1.0) > emotionSumTolerance {
		return models.SentimentResult{}, fmt.Errorf("%w: emotion values sum to %v", ErrMalformedResponse, sum)
	}

	return models.SentimentResult{
		Score:    score,
		Level:    level,
		Emotions: emotions.Normalized(),
	}, nil
}

// importantWords issues the salient-words request. A failure here does not
// reject the whole analysis; the word list just stays empty.
func (r *RemoteAnalyzer) importantWords(ctx context.Context, text string) []string {
	result, err := r.gen.GenerateContent(ctx, importantWordsPrompt(text), generation.FormatJSON)
	if err != nil {
		slog.Warn("[RemoteAnalyzer] Important-words request failed",
			slog.String("error", err.Error()))
		return nil
	}

	var words []string
	if err := json.Unmarshal(result.Content, &words); err != nil {
		slog.Warn("[RemoteAnalyzer] Important-words payload was not a string array",
			slog.String("error", err.Error()))
		return nil
	}

	cleaned := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		cleaned = append(cleaned, w)
		if len(cleaned) == maxImportantWords {
			break
		}
	}
	return cleaned
}

const maxImportantWords = 5
