package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleModel is the GORM-specific struct for the 'vehicles' table.
type VehicleModel struct {
	ID          int64  `gorm:"primaryKey"`
	UserID      int64  `gorm:"not null;index"`
	PlateNumber string `gorm:"type:varchar(20);not null"`
	Brand       string `gorm:"type:varchar(100)"`
	Model       string `gorm:"type:varchar(100)"`
	Year        *int
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return TableVehicles
}

// FineModel is the GORM-specific struct for the 'fines' table.
type FineModel struct {
	ID          int64           `gorm:"primaryKey"`
	VehicleID   int64           `gorm:"not null;index"`
	FineNumber  string          `gorm:"type:varchar(30);not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Description string          `gorm:"type:text"`
	Date        time.Time       `gorm:"type:date;not null"`
	Location    string          `gorm:"type:varchar(255)"`
	IsPaid      bool            `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (FineModel) TableName() string {
	return TableFines
}
