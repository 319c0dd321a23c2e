package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tax is a tax assessment shown in the government services snapshot.
type Tax struct {
	ID      int64
	UserID  int64
	TaxType string
	Amount  decimal.Decimal
	Year    int
	IsPaid  bool
	DueDate time.Time
}

// Benefit is a social benefit entry shown in the government services snapshot.
type Benefit struct {
	ID          int64
	UserID      int64
	BenefitType string
	Status      string
	Description string
	Amount      decimal.Decimal
}
