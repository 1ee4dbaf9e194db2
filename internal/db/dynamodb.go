// Package db holds the persistence collaborator: a DynamoDB-backed entry
// store. The core only ever appends entries and lists them back.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/moodlens/moodlens/internal/models"
)

const (
	defaultEntriesTable = "JournalEntries"
	maxBatchSize        = 25
	batchRetries        = 3
)

type EntryStore struct {
	client *dynamodb.Client
	table  string
}

// NewEntryStore wraps a DynamoDB client. The table name comes from
// ENTRIES_TABLE_NAME when set.
func NewEntryStore(client *dynamodb.Client) *EntryStore {
	table := os.Getenv("ENTRIES_TABLE_NAME")
	if table == "" {
		table = defaultEntriesTable
	}
	return &EntryStore{client: client, table: table}
}

// PutEntry appends one entry.
func (s *EntryStore) PutEntry(ctx context.Context, entry models.Entry) error {
	item, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return fmt.Errorf("[EntryStore] Failed to marshal entry: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("[EntryStore] Failed to put entry: %w", err)
	}

	slog.Info("[EntryStore] Stored entry", slog.String("id", entry.ID))
	return nil
}

// GetAllEntries lists the full entry collection.
func (s *EntryStore) GetAllEntries(ctx context.Context) ([]models.Entry, error) {
	var entries []models.Entry
	paginator := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	})

	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[EntryStore] Scan for entries failed: %w", err)
		}
		var page []models.Entry
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("[EntryStore] Failed to unmarshal entry page: %w", err)
		}
		entries = append(entries, page...)
	}

	slog.Info("[EntryStore] Retrieved entries", slog.Int("count", len(entries)))
	return entries, nil
}

// BatchPutEntries writes entries in chunks of 25, retrying unprocessed items
// with backoff.
func (s *EntryStore) BatchPutEntries(ctx context.Context, entries []models.Entry) error {
	for i := 0; i < len(entries); i += maxBatchSize {
		select {
		case <-ctx.Done():
			slog.Warn("[EntryStore] Context canceled during batch write")
			return ctx.Err()
		default:
		}

		end := i + maxBatchSize
		if end > len(entries) {
			end = len(entries)
		}

		writeRequests := make([]types.WriteRequest, 0, end-i)
		for _, entry := range entries[i:end] {
			item, err := attributevalue.MarshalMap(entry)
			if err != nil {
				slog.Warn("[EntryStore] Skipping unmarshalable entry",
					slog.String("id", entry.ID),
					slog.String("error", err.Error()))
				continue
			}
			writeRequests = append(writeRequests, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}
		if len(writeRequests) == 0 {
			continue
		}

		out, err := s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{s.table: writeRequests},
		})
		if err != nil {
			return fmt.Errorf("[EntryStore] Failed to batch write entries: %w", err)
		}

		backoff := 500 * time.Millisecond
		for attempt := 0; len(out.UnprocessedItems) > 0 && attempt < batchRetries; attempt++ {
			time.Sleep(backoff)
			backoff *= 2

			slog.Warn("[EntryStore] Retrying unprocessed entries...",
				slog.Int("attempt", attempt+1),
				slog.Int("remaining", len(out.UnprocessedItems[s.table])))

			out, err = s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: out.UnprocessedItems,
			})
			if err != nil {
				return fmt.Errorf("[EntryStore] Batch write retry failed: %w", err)
			}
		}

		if len(out.UnprocessedItems) > 0 {
			return fmt.Errorf("[EntryStore] %d entries were not written after retries",
				len(out.UnprocessedItems[s.table]))
		}
	}

	slog.Info("[EntryStore] Stored entry batch", slog.Int("count", len(entries)))
	return nil
}
