// Package analyzer orchestrates sentiment analysis: remote-first through the
// generation collaborator, with an unconditional fallback to the local
// keyword analyzer. Callers never observe a remote failure in the result.
package analyzer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"github.com/moodlens/moodlens/internal/models"
	"github.com/moodlens/moodlens/internal/sentiment"
)

// Cache stores remote analysis results keyed by text digest. A nil Cache
// disables caching; misses and storage failures are silent.
type Cache interface {
	Get(ctx context.Context, key string) (models.SentimentResult, bool)
	Store(ctx context.Context, key string, result models.SentimentResult)
}

// Service is the single public entry point for turning text into a
// SentimentResult. Construct one per process and inject it; it holds no
// mutable state of its own.
type Service struct {
	remote *RemoteAnalyzer
	cache  Cache
}

// NewService builds an orchestrator. remote may be nil, in which case every
// call is served by the local analyzer directly.
func NewService(remote *RemoteAnalyzer, cache Cache) *Service {
	return &Service{remote: remote, cache: cache}
}

// Analyze resolves text to a SentimentResult. Preconditions (trimmed,
// non-empty, minimum length) are the caller's responsibility; see the journal
// package. Any remote failure is recovered by the local analyzer, so the call
// itself cannot fail.
func (s *Service) Analyze(ctx context.Context, text string) models.SentimentResult {
	key := cacheKey(text)

	if s.cache != nil {
		if result, ok := s.cache.Get(ctx, key); ok {
			return result
		}
	}

	if s.remote != nil {
		result, err := s.remote.Analyze(ctx, text)
		if err == nil {
			if s.cache != nil {
				s.cache.Store(ctx, key, result)
			}
			return result
		}
		slog.Warn("[Analyzer] Remote analysis failed, falling back to local analyzer",
			slog.String("error", err.Error()))
	}

	return sentiment.Analyze(text)
}

func cacheKey(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:])
}
