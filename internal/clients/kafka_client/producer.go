package kafka_client

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/moodlens/moodlens/internal/models"
)

var producer *kafka.Producer

func InitProducer(cfg KafkaConfig) error {
	slog.Info("[KafkaClient] Initializing Kafka producer...",
		slog.String("broker", cfg.Broker))

	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":  cfg.Broker,
		"enable.idempotence": true,
		"acks":               "all",
	})
	if err != nil {
		return fmt.Errorf("[KafkaClient] Failed to create producer: %w", err)
	}

	producer = p
	slog.Info("[KafkaClient] Kafka producer initialized")
	return nil
}

func CloseProducer() {
	if producer == nil {
		return
	}
	if remaining := producer.Flush(5000); remaining > 0 {
		slog.Warn("[KafkaClient] Not all messages were delivered before shutdown",
			slog.Int("remaining", remaining))
	}
	producer.Close()
	slog.Info("[KafkaClient] Kafka producer shut down")
}

// PublishSubmission sends one raw journal submission to the ingestion topic
// and waits for the delivery report.
func PublishSubmission(sub models.EntrySubmission) error {
	if producer == nil {
		return fmt.Errorf("[KafkaClient] Producer has not been initialized")
	}

	jsonData, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("[KafkaClient] Failed to marshal submission: %w", err)
	}

	topic := KAFKA_TOPIC_ENTRY_SUBMISSIONS
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(sub.SubmissionID),
		Value:          jsonData,
	}

	deliveries := make(chan kafka.Event, 1)
	if err := producer.Produce(msg, deliveries); err != nil {
		return fmt.Errorf("[KafkaClient] Failed to produce submission: %w", err)
	}

	event := <-deliveries
	delivered, ok := event.(*kafka.Message)
	if !ok {
		return fmt.Errorf("[KafkaClient] Unexpected delivery event: %v", event)
	}
	if delivered.TopicPartition.Error != nil {
		return fmt.Errorf("[KafkaClient] Delivery failed: %w", delivered.TopicPartition.Error)
	}

	slog.Info("[KafkaClient] Published journal submission",
		slog.String("submission_id", sub.SubmissionID))
	return nil
}
