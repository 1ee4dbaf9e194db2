// Command analyze runs one journal text through the analysis pipeline and
// prints the result as JSON. Text comes from the command line or stdin.
package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/moodlens/moodlens/config"
	"github.com/moodlens/moodlens/internal/analyzer"
	"github.com/moodlens/moodlens/internal/clients"
	"github.com/moodlens/moodlens/internal/journal"
	"github.com/moodlens/moodlens/internal/logging"
	"github.com/moodlens/moodlens/internal/models"
	"github.com/moodlens/moodlens/internal/recommend"
)

type analysisOutput struct {
	Text            string                 `json:"text"`
	Analysis        models.SentimentResult `json:"analysis"`
	Recommendations []string               `json:"recommendations"`
}

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	text := strings.Join(os.Args[1:], " ")
	if strings.TrimSpace(text) == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			slog.Error("[Analyze] Failed to read stdin", slog.String("error", err.Error()))
			os.Exit(1)
		}
		text = string(raw)
	}
	text = strings.TrimSpace(text)

	if err := journal.ValidateEntryText(text); err != nil {
		slog.Error("[Analyze] Invalid entry text", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	var remote *analyzer.RemoteAnalyzer
	gen, closeGen, err := clients.NewGeneratorFromEnv(ctx)
	if err != nil {
		slog.Warn("[Analyze] No generation provider available, using local analyzer only",
			slog.String("error", err.Error()))
	} else {
		defer closeGen()
		remote = analyzer.NewRemoteAnalyzer(gen)
	}

	svc := analyzer.NewService(remote, nil)
	selector := recommend.NewSelector(gen)

	result := svc.Analyze(ctx, text)
	out := analysisOutput{
		Text:            text,
		Analysis:        result,
		Recommendations: selector.Recommend(ctx, result.Level, text),
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		slog.Error("[Analyze] Failed to encode output", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
