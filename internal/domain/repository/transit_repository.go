package repository

import (
	"context"

	"citycard/internal/domain/entity"
	"citycard/internal/errors"

	"github.com/shopspring/decimal"
)

// ErrTransitCardNotFound is returned when a transit card does not exist.
var ErrTransitCardNotFound = errors.New("transit card not found")

// TransitCardRepository defines the persistence operations for transit cards and their ledger.
type TransitCardRepository interface {
	Create(ctx context.Context, card *entity.TransitCard) error

	// FindByUser lists a user's cards in insertion order.
	FindByUser(ctx context.Context, userID int64) ([]*entity.TransitCard, error)

	// FindByIDForUpdate loads a card and locks its row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.TransitCard, error)

	// AdjustBalance adds delta (which may be negative) to the balance and returns the new balance.
	AdjustBalance(ctx context.Context, id int64, delta decimal.Decimal) (decimal.Decimal, error)

	// AppendTransaction writes a ledger entry.
	AppendTransaction(ctx context.Context, tx *entity.TransitTransaction) error
}
