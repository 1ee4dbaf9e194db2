// Package sentiment holds the deterministic keyword-frequency analyzer. It
// needs no network, never fails, and serves as the fallback whenever remote
// analysis is unavailable or returns something unusable.
package sentiment

import (
	"sort"
	"strings"

	"github.com/moodlens/moodlens/internal/models"
)

const maxImportantWords = 5

// Analyze scores raw text against the emotion keyword dictionaries. The six
// emotion intensities sum to 1.0 whenever at least one keyword matched and
// are all zero otherwise. Calling it twice on the same text yields the same
// result.
func Analyze(text string) models.SentimentResult {
	tokens := strings.Fields(strings.ToLower(text))

	var counts [6]float64
	wordCounts := make(map[string]int)
	var wordOrder []string

	for _, token := range tokens {
		for i, emotion := range models.EmotionNames {
			if !matchesAny(token, emotionKeywords[emotion]) {
				continue
			}
			counts[i]++
			if wordCounts[token] == 0 {
				wordOrder = append(wordOrder, token)
			}
			wordCounts[token]++
		}
	}

	emotions := models.EmotionVectorFromValues(counts).Normalized()

	negative := emotions.Sadness + emotions.Fear + emotions.Anger
	positive := emotions.Joy + emotions.Love + emotions.Surprise

	return models.SentimentResult{
		Score:          positive - negative,
		Level:          models.LevelForNegativeScore(negative),
		Emotions:       emotions,
		ImportantWords: topWords(wordCounts, wordOrder),
	}
}

func matchesAny(token string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(token, keyword) {
			return true
		}
	}
	return false
}

// topWords picks the most frequently matched tokens, descending by count with
// ties broken by first-encountered order.
func topWords(counts map[string]int, order []string) []string {
	words := append([]string(nil), order...)
	sort.SliceStable(words, func(i, j int) bool {
		return counts[words[i]] > counts[words[j]]
	})
	if len(words) > maxImportantWords {
		words = words[:maxImportantWords]
	}
	return words
}
