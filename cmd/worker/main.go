// Command worker consumes raw journal submissions from Kafka, analyzes them,
// and stores the resulting entries in DynamoDB.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/moodlens/moodlens/config"
	"github.com/moodlens/moodlens/internal/analyzer"
	"github.com/moodlens/moodlens/internal/clients"
	"github.com/moodlens/moodlens/internal/clients/kafka_client"
	"github.com/moodlens/moodlens/internal/consumers"
	"github.com/moodlens/moodlens/internal/db"
	"github.com/moodlens/moodlens/internal/logging"
	"github.com/moodlens/moodlens/internal/recommend"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var remote *analyzer.RemoteAnalyzer
	gen, closeGen, err := clients.NewGeneratorFromEnv(ctx)
	if err != nil {
		slog.Warn("[Worker] No generation provider available, running local-only",
			slog.String("error", err.Error()))
	} else {
		defer closeGen()
		remote = analyzer.NewRemoteAnalyzer(gen)
	}

	var cache analyzer.Cache
	if os.Getenv("VALKEY_INIT_ADDRESS") != "" {
		analysisCache, err := clients.NewAnalysisCache()
		if err != nil {
			slog.Warn("[Worker] Analysis cache unavailable, continuing without it",
				slog.String("error", err.Error()))
		} else {
			defer analysisCache.Close()
			cache = analysisCache
		}
	}

	store := db.NewEntryStore(clients.GetDynamoDBClient())

	consumer := consumers.NewEntryConsumer(
		analyzer.NewService(remote, cache),
		recommend.NewSelector(gen),
		store,
	)

	cfg := kafka_client.GetKafkaConfig()
	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_ENTRY_SUBMISSIONS, consumer.Run)

	if err := kafka_client.StartConsumer(ctx, cfg); err != nil {
		slog.Error("[Worker] Failed to start consumer",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
}
