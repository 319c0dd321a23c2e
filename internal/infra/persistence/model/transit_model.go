package model

import "github.com/shopspring/decimal"

// TransitCardModel is the GORM-specific struct for the 'podorozhnik_cards' table.
type TransitCardModel struct {
	ID         int64           `gorm:"primaryKey"`
	UserID     int64           `gorm:"not null;index"`
	CardNumber string          `gorm:"type:varchar(50);not null"`
	Balance    decimal.Decimal `gorm:"type:numeric(12,2);not null;check:balance >= 0"`
}

// TableName explicitly sets the table name for GORM.
func (TransitCardModel) TableName() string {
	return TableTransitCards
}

// TransitTransactionModel is the GORM-specific struct for the 'podorozhnik_transactions' table.
type TransitTransactionModel struct {
	ID          int64           `gorm:"primaryKey"`
	CardID      int64           `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Type        string          `gorm:"column:transaction_type;type:varchar(20);not null"`
	Description string          `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (TransitTransactionModel) TableName() string {
	return TableTransitTransactions
}
