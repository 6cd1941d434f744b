package events

import (
	"context"
	"time"
)

// TransferCompletedEvent is emitted after a transfer has been fully committed:
// both balances persisted and the ledger entry written
type TransferCompletedEvent struct {
	TransferID           string    `json:"transfer_id"`
	SourceAccountID      string    `json:"source_account_id"`
	DestinationAccountID string    `json:"destination_account_id"`
	Amount               string    `json:"amount"`
	Currency             string    `json:"currency"`
	TransactionDate      time.Time `json:"transaction_date"`
}

// PublisherInterface publishes transfer lifecycle events to an event stream
type PublisherInterface interface {
	PublishTransferCompleted(ctx context.Context, event TransferCompletedEvent) error
}

// NoopPublisher discards events. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishTransferCompleted(ctx context.Context, event TransferCompletedEvent) error {
	return nil
}
