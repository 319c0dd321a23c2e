package usecase

import (
	"context"

	"citycard/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// AddTransitCardInput defines a new transit card. An empty CardNumber is generated.
type AddTransitCardInput struct {
	UserID     int64
	CardNumber string
	Balance    decimal.Decimal
}

// TransitOperationInput defines a top-up or a payment.
// UserID is optional; when set the card must belong to that user.
type TransitOperationInput struct {
	CardID int64
	UserID *int64
	Amount decimal.Decimal
}

// AddBankCardInput defines a bank card to link.
type AddBankCardInput struct {
	UserID     int64
	CardNumber string
	HolderName string
	ExpireDate string
	BankName   string
}

// WalletUsecase manages transit cards and bank cards.
type WalletUsecase interface {
	AddTransitCard(ctx context.Context, input AddTransitCardInput) (*entity.TransitCard, error)

	// TopUp credits the card and returns the new balance.
	TopUp(ctx context.Context, input TransitOperationInput) (decimal.Decimal, error)

	// Pay debits the card and returns the new balance. The balance never goes negative.
	Pay(ctx context.Context, input TransitOperationInput) (decimal.Decimal, error)

	AddBankCard(ctx context.Context, input AddBankCardInput) (*entity.BankCard, error)
}
