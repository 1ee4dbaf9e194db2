package clients

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/moodlens/moodlens/internal/models"
)

const (
	analysisKeyPrefix = "moodlens:analysis:"
	analysisTTL       = 24 * time.Hour
	valkeyRetries     = 3
)

// AnalysisCache stores remote analysis results in Valkey so repeated
// submissions of identical text skip the generation round trip. Implements
// the analyzer Cache interface; all failures degrade to cache misses.
type AnalysisCache struct {
	client valkey.Client
}

func NewAnalysisCache() (*AnalysisCache, error) {
	addr := os.Getenv("VALKEY_INIT_ADDRESS")
	if addr == "" {
		return nil, fmt.Errorf("VALKEY_INIT_ADDRESS is not set")
	}

	opts := valkey.ClientOption{
		InitAddress:      []string{addr},
		Password:         os.Getenv("VALKEY_PASSWORD"),
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if os.Getenv("VALKEY_TLS") == "true" {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create Valkey client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Valkey: %w", err)
	}

	slog.Info("[AnalysisCache] Connected to Valkey", slog.String("address", addr))
	return &AnalysisCache{client: client}, nil
}

func (c *AnalysisCache) Close() {
	c.client.Close()
}

func (c *AnalysisCache) Get(ctx context.Context, key string) (models.SentimentResult, bool) {
	res := c.doWithRetry(ctx, func() valkey.Completed {
		return c.client.B().Get().Key(analysisKeyPrefix + key).Build()
	})
	if res.Error() != nil {
		return models.SentimentResult{}, false
	}

	raw, err := res.AsBytes()
	if err != nil {
		return models.SentimentResult{}, false
	}

	var result models.SentimentResult
	if err := json.Unmarshal(raw, &result); err != nil {
		slog.Warn("[AnalysisCache] Dropping unreadable cached result",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return models.SentimentResult{}, false
	}
	return result, true
}

func (c *AnalysisCache) Store(ctx context.Context, key string, result models.SentimentResult) {
	raw, err := json.Marshal(result)
	if err != nil {
		slog.Warn("[AnalysisCache] Failed to marshal result",
			slog.String("error", err.Error()))
		return
	}

	build := func() valkey.Completed {
		return c.client.B().Set().
			Key(analysisKeyPrefix + key).
			Value(string(raw)).
			Ex(analysisTTL).
			Build()
	}
	if res := c.doWithRetry(ctx, build); res.Error() != nil {
		slog.Warn("[AnalysisCache] Failed to store result",
			slog.String("key", key),
			slog.String("error", res.Error().Error()))
	}
}

// doWithRetry rebuilds the command per attempt; built commands are recycled
// by the client after Do and must not be reused.
func (c *AnalysisCache) doWithRetry(ctx context.Context, build func() valkey.Completed) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < valkeyRetries; i++ {
		result = c.client.Do(ctx, build())
		if result.Error() == nil || valkey.IsValkeyNil(result.Error()) {
			break
		}
		time.Sleep(250 * time.Millisecond)
	}
	return result
}
