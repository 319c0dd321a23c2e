package service

import (
	"context"
	"time"
)

// TransitLedgerEvent announces a committed transit balance change.
type TransitLedgerEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	CardID     int64     `json:"card_id"`
	Type       string    `json:"type"`    // "topup" or "payment"
	Amount     float64   `json:"amount"`  // Signed ledger amount
	Balance    float64   `json:"balance"` // Balance after the change
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTransitLedgerEvent publishes a ledger event for downstream consumers
	PublishTransitLedgerEvent(ctx context.Context, event *TransitLedgerEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
