// Command submit publishes a raw journal text onto the ingestion topic for
// the worker to analyze and store.
package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moodlens/moodlens/config"
	"github.com/moodlens/moodlens/internal/clients/kafka_client"
	"github.com/moodlens/moodlens/internal/journal"
	"github.com/moodlens/moodlens/internal/logging"
	"github.com/moodlens/moodlens/internal/models"
)

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
			slog.Error("[Submit] Failed to read stdin", slog.String("error", err.Error()))
			os.Exit(1)
		}
		text = string(raw)
	}
	text = strings.TrimSpace(text)

	if err := journal.ValidateEntryText(text); err != nil {
		slog.Error("[Submit] Invalid entry text", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cfg := kafka_client.GetKafkaConfig()
	if err := kafka_client.InitProducer(cfg); err != nil {
		slog.Error("[Submit] Failed to initialize producer", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer kafka_client.CloseProducer()

	sub := models.EntrySubmission{
		SubmissionID: uuid.NewString(),
		Text:         text,
		SubmittedAt:  time.Now().UTC(),
	}
	if err := kafka_client.PublishSubmission(sub); err != nil {
		slog.Error("[Submit] Failed to publish submission", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("[Submit] Submission published", slog.String("submission_id", sub.SubmissionID))
}
