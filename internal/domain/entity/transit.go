package entity

import "github.com/shopspring/decimal"

// TransitTransactionType is the kind of a ledger entry.
type TransitTransactionType string

const (
	TransitTopUp   TransitTransactionType = "topup"
	TransitPayment TransitTransactionType = "payment"
)

// Ledger descriptions shown in the card history.
const (
	TransitTopUpDescription   = "Пополнение"
	TransitPaymentDescription = "Оплата"
)

// TransitCard is a stored-value transit card. Balance never goes negative.
type TransitCard struct {
	ID         int64
	UserID     int64
	CardNumber string
	Balance    decimal.Decimal
}

// TransitTransaction is an append-only ledger entry written together with the balance change it records.
type TransitTransaction struct {
	ID          int64
	CardID      int64
	Amount      decimal.Decimal // Signed: positive for top-ups, negative for payments.
	Type        TransitTransactionType
	Description string
}

// NewTopUpTransaction builds the ledger entry for crediting amount to a card.
func NewTopUpTransaction(cardID int64, amount decimal.Decimal) *TransitTransaction {
	return &TransitTransaction{
		CardID:      cardID,
		Amount:      amount,
		Type:        TransitTopUp,
		Description: TransitTopUpDescription,
	}
}

// NewPaymentTransaction builds the ledger entry for debiting amount from a card.
func NewPaymentTransaction(cardID int64, amount decimal.Decimal) *TransitTransaction {
	return &TransitTransaction{
		CardID:      cardID,
		Amount:      amount.Neg(),
		Type:        TransitPayment,
		Description: TransitPaymentDescription,
	}
}
