package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxModel is the GORM-specific struct for the 'taxes' table.
type TaxModel struct {
	ID      int64           `gorm:"primaryKey"`
	UserID  int64           `gorm:"not null;index"`
	TaxType string          `gorm:"type:varchar(200);not null"`
	Amount  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Year    int             `gorm:"not null"`
	IsPaid  bool            `gorm:"not null"`
	DueDate time.Time       `gorm:"type:date"`
}

// TableName explicitly sets the table name for GORM.
func (TaxModel) TableName() string {
	return TableTaxes
}

// BenefitModel is the GORM-specific struct for the 'benefits' table.
type BenefitModel struct {
	ID          int64           `gorm:"primaryKey"`
	UserID      int64           `gorm:"not null;index"`
	BenefitType string          `gorm:"type:varchar(200);not null"`
	Status      string          `gorm:"type:varchar(100)"`
	Description string          `gorm:"type:text"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName explicitly sets the table name for GORM.
func (BenefitModel) TableName() string {
	return TableBenefits
}
