// Package journal builds analyzed entries out of raw text: validation,
// analysis, recommendations, identity, and the append to the entry store.
package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moodlens/moodlens/internal/models"
)

// MinEntryLength is the minimum trimmed text length accepted for analysis.
const MinEntryLength = 10

var (
	ErrEmptyText    = errors.New("entry text is empty")
	ErrTextTooShort = fmt.Errorf("entry text must be at least %d characters", MinEntryLength)
)

// Analyzer resolves text to a sentiment result. It cannot fail; remote
// problems are handled below this interface.
type Analyzer interface {
	Analyze(ctx context.Context, text string) models.SentimentResult
}

// Recommender selects wellness suggestions for a stress level.
type Recommender interface {
	Recommend(ctx context.Context, level models.StressLevel, text string) []string
}

// EntryStore is the persistence collaborator. The journal only ever appends.
type EntryStore interface {
	PutEntry(ctx context.Context, entry models.Entry) error
}

// ValidateEntryText rejects empty or too-short text before it reaches the
// analyzer. Violations are usage errors, not analyzer failures.
func ValidateEntryText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyText
	}
	if len(trimmed) < MinEntryLength {
		return ErrTextTooShort
	}
	return nil
}

type Service struct {
	analyzer    Analyzer
	recommender Recommender
	store       EntryStore
}

// NewService wires the entry pipeline. store may be nil for callers that
// persist elsewhere (or not at all).
func NewService(analyzer Analyzer, recommender Recommender, store EntryStore) *Service {
	return &Service{
		analyzer:    analyzer,
		recommender: recommender,
		store:       store,
	}
}

// CreateEntry validates, analyzes, and persists one journal entry. The
// returned entry is complete whether or not a store is configured.
func (s *Service) CreateEntry(ctx context.Context, text string) (models.Entry, error) {
	if err := ValidateEntryText(text); err != nil {
		return models.Entry{}, err
	}

	analysis := s.analyzer.Analyze(ctx, text)
	recommendations := s.recommender.Recommend(ctx, analysis.Level, text)

	entry := models.Entry{
		ID:              uuid.NewString(),
		Text:            text,
		Timestamp:       time.Now().UTC(),
		Analysis:        analysis,
		Recommendations: recommendations,
	}

	if s.store != nil {
		if err := s.store.PutEntry(ctx, entry); err != nil {
			return models.Entry{}, fmt.Errorf("failed to store entry: %w", err)
		}
	}
	return entry, nil
}
