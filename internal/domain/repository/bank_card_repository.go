package repository

import (
	"context"

	"citycard/internal/domain/entity"
)

// BankCardRepository defines the persistence operations for bank cards.
type BankCardRepository interface {
	Create(ctx context.Context, card *entity.BankCard) error
	// FindByUser lists a user's bank cards in insertion order.
	FindByUser(ctx context.Context, userID int64) ([]*entity.BankCard, error)
}
