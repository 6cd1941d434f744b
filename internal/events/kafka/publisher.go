package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"fundtransfer-api/internal/events"

	"github.com/segmentio/kafka-go"
)

// Publisher writes transfer events to a Kafka topic
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a Kafka-backed event publisher
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishTransferCompleted publishes a transfer.completed event, keyed by
// transfer ID so replays for the same transfer land on the same partition
func (p *Publisher) PublishTransferCompleted(ctx context.Context, event events.TransferCompletedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal transfer event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.TransferID),
		Value: data,
	})
}

// Close flushes and closes the underlying writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}
