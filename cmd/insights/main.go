// Command insights reads the stored entry collection and prints the stress
// distribution, average emotions, and the recent daily trend series.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/moodlens/moodlens/config"
	"github.com/moodlens/moodlens/internal/clients"
	"github.com/moodlens/moodlens/internal/db"
	"github.com/moodlens/moodlens/internal/insights"
	"github.com/moodlens/moodlens/internal/logging"
	"github.com/moodlens/moodlens/internal/models"
)

type insightsOutput struct {
	EntryCount      int                       `json:"entry_count"`
	Distribution    models.StressDistribution `json:"distribution"`
	AverageEmotions models.EmotionVector      `json:"average_emotions"`
	AverageScore    float64                   `json:"average_score"`
	DailyTrends     []models.TrendPoint       `json:"daily_trends"`
}

func main() {
	windowDays := flag.Int("window", 7, "number of most recent days in the trend series")
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx := context.Background()
	store := db.NewEntryStore(clients.GetDynamoDBClient())

	entries, err := store.GetAllEntries(ctx)
	if err != nil {
		slog.Error("[Insights] Failed to load entries", slog.String("error", err.Error()))
		os.Exit(1)
	}

	out := insightsOutput{
		EntryCount:      len(entries),
		Distribution:    insights.Distribution(entries),
		AverageEmotions: insights.AverageEmotions(entries),
		AverageScore:    insights.AverageScore(entries),
		DailyTrends:     insights.DailyTrends(entries, *windowDays),
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		slog.Error("[Insights] Failed to encode output", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
