// Package recommend maps a stress level to a short ordered list of wellness
// suggestions, optionally personalized through the generation collaborator.
package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/moodlens/moodlens/internal/generation"
	"github.com/moodlens/moodlens/internal/models"
)

const (
	maxRecommendations = 5
	// A personalized list shorter than this is rejected in favor of the
	// static table.
	minPersonalized = 3
)

// staticRecommendations is the fixed fallback table: exactly five suggestions
// per level, in fixed order, defined once and read-only thereafter.
var staticRecommendations = map[models.StressLevel][]string{
	models.StressMild: {
		"Take a moment to appreciate something positive in your day.",
		"Try a short 2-minute mindful breathing exercise.",
		"Consider going for a brief walk outside if possible.",
		"Write down three things you're grateful for right now.",
		"Listen to a favorite uplifting song.",
	},
	models.StressModerate: {
		"Try the 5-4-3-2-1 grounding technique: notice 5 things you see, 4 things you feel, 3 things you hear, 2 things you smell, and 1 thing you taste.",
		"Practice box breathing: inhale for 4 counts, hold for 4, exhale for 4, hold for 4, and repeat.",
		"Take a short break from screens and current tasks.",
		"Try gentle stretching or simple yoga poses for 5 minutes.",
		"Write down what's on your mind to externalize your thoughts.",
	},
	models.StressSevere: {
		"If possible, move to a quiet space where you can take some time for yourself.",
		"Try a guided meditation focused on anxiety relief (even just 5 minutes).",
		"Practice progressive muscle relaxation by tensing and releasing each muscle group.",
		"Consider reaching out to a supportive friend, family member, or counselor.",
		"Focus on slow, deep breathing - in through the nose for 5 counts, out through the mouth for 7.",
	},
}

const recommendationsPromptTemplate = `
Based on the following emotional state and sentiment score, generate 5 helpful wellness recommendations.
Emotional state: %s
Sentiment score: %v (ranges from -1 to 1, where -1 is very negative, 0 is neutral, and 1 is very positive)

Please respond with a JSON array of 5 strings, each containing a concise recommendation.
Format the response as valid JSON only, like this: ["recommendation 1", "recommendation 2", ...]`

// Selector picks recommendations for a stress level. With a nil generator it
// always serves the static table.
type Selector struct {
	gen generation.Generator
}

func NewSelector(gen generation.Generator) *Selector {
	return &Selector{gen: gen}
}

// Recommend returns 1 to 5 suggestions for the level. When the entry text is
// available and a generator is configured the list is personalized; any
// failure or an undersized reply falls back to the static table.
func (s *Selector) Recommend(ctx context.Context, level models.StressLevel, text string) []string {
	if s.gen != nil && text != "" {
		recs, err := s.personalized(ctx, level, text)
		if err != nil {
			slog.Warn("[Recommender] Personalization failed, using static table",
				slog.String("level", string(level)),
				slog.String("error", err.Error()))
		} else if len(recs) >= minPersonalized {
			return recs
		}
	}
	return Static(level)
}

// Static returns a copy of the predefined recommendation list for the level.
func Static(level models.StressLevel) []string {
	recs, ok := staticRecommendations[level]
	if !ok {
		recs = staticRecommendations[models.StressMild]
	}
	return append([]string(nil), recs...)
}

// syntheticScore seeds the personalization prompt with a sentiment score
// derived from the level alone.
func syntheticScore(level models.StressLevel) float64 {
	switch level {
	case models.StressSevere:
		return -0.8
	case models.StressModerate:
		return -0.4
	default:
		return 0.0
	}
}

func (s *Selector) personalized(ctx context.Context, level models.StressLevel, text string) ([]string, error) {
	prompt := fmt.Sprintf(recommendationsPromptTemplate, text, syntheticScore(level))

	result, err := s.gen.GenerateContent(ctx, prompt, generation.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("recommendation request failed: %w", err)
	}

	var recs []string
	if err := json.Unmarshal(result.Content, &recs); err != nil {
		return nil, fmt.Errorf("recommendation payload was not a string array: %w", err)
	}

	cleaned := make([]string, 0, len(recs))
	for _, rec := range recs {
		if rec == "" {
			continue
		}
		cleaned = append(cleaned, rec)
		if len(cleaned) == maxRecommendations {
			break
		}
	}
	return cleaned, nil
}
