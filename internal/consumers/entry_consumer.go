// Package consumers holds the ingestion side of the pipeline: raw journal
// submissions arrive on Kafka, are analyzed, and leave as stored entries.
package consumers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/google/uuid"

	"github.com/moodlens/moodlens/internal/clients/kafka_client"
	"github.com/moodlens/moodlens/internal/journal"
	"github.com/moodlens/moodlens/internal/models"
	"github.com/moodlens/moodlens/internal/utils"
)

const storageBatchSize = 10

// BatchEntryStore persists analyzed entries in batches.
type BatchEntryStore interface {
	BatchPutEntries(ctx context.Context, entries []models.Entry) error
}

type EntryConsumer struct {
	analyzer    journal.Analyzer
	recommender journal.Recommender
	store       BatchEntryStore
	buffer      *utils.BatchBuffer[models.Entry]
}

func NewEntryConsumer(analyzer journal.Analyzer, recommender journal.Recommender, store BatchEntryStore) *EntryConsumer {
	return &EntryConsumer{
		analyzer:    analyzer,
		recommender: recommender,
		store:       store,
		buffer:      utils.NewBatchBuffer[models.Entry](storageBatchSize),
	}
}

// Run consumes journal submissions until the context is canceled. Offsets are
// committed only after the entries they produced have been stored.
func (c *EntryConsumer) Run(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	var pending *kafka.Message

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[EntryConsumer] Shutting down, flushing remaining entries...")
			c.flush(context.Background(), committer, pending)
			return
		default:
		}

		msg, err := iterator.Next()
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			slog.Error("[EntryConsumer] Stopping after iterator failure",
				slog.String("error", err.Error()))
			c.flush(ctx, committer, pending)
			return
		}

		var sub models.EntrySubmission
		if err := json.Unmarshal(msg.Value, &sub); err != nil {
			slog.Warn("[EntryConsumer] Dropping undecodable submission",
				slog.String("error", err.Error()))
			_ = committer.Commit(msg)
			continue
		}

		if err := journal.ValidateEntryText(sub.Text); err != nil {
			slog.Warn("[EntryConsumer] Dropping invalid submission",
				slog.String("submission_id", sub.SubmissionID),
				slog.String("error", err.Error()))
			_ = committer.Commit(msg)
			continue
		}

		c.buffer.Add(c.buildEntry(ctx, sub))
		pending = msg

		if c.buffer.Size() >= storageBatchSize {
			if c.flush(ctx, committer, pending) {
				pending = nil
			}
		}
	}
}

func (c *EntryConsumer) buildEntry(ctx context.Context, sub models.EntrySubmission) models.Entry {
	analysis := c.analyzer.Analyze(ctx, sub.Text)
	recommendations := c.recommender.Recommend(ctx, analysis.Level, sub.Text)

	id := sub.SubmissionID
	if id == "" {
		id = uuid.NewString()
	}
	timestamp := sub.SubmittedAt
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	return models.Entry{
		ID:              id,
		Text:            sub.Text,
		Timestamp:       timestamp.UTC(),
		Analysis:        analysis,
		Recommendations: recommendations,
	}
}

// flush stores the buffered entries and, on success, commits up to the given
// message. Reports whether the buffer is now empty.
func (c *EntryConsumer) flush(ctx context.Context, committer *kafka_client.CommitHandler, upTo *kafka.Message) bool {
	batch := c.buffer.GetAndClear()
	if len(batch) == 0 {
		return true
	}

	if err := c.store.BatchPutEntries(ctx, batch); err != nil {
		slog.Error("[EntryConsumer] Failed to store entry batch, re-buffering",
			slog.Int("batch_size", len(batch)),
			slog.String("error", err.Error()))
		for _, entry := range batch {
			c.buffer.Add(entry)
		}
		return false
	}

	if upTo != nil {
		if err := committer.Commit(upTo); err != nil {
			slog.Warn("[EntryConsumer] Failed to commit offset after storage",
				slog.String("error", err.Error()))
		}
	}
	return true
}
