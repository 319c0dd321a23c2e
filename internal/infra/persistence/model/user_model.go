package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserModel is the GORM-specific struct for the 'users' table.
// Balance and bonus points are left to column defaults on insert.
type UserModel struct {
	ID          int64           `gorm:"primaryKey"`
	Phone       string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	FirstName   string          `gorm:"type:varchar(100);not null"`
	LastName    string          `gorm:"type:varchar(100);not null"`
	MiddleName  string          `gorm:"type:varchar(100);not null;default:''"`
	BirthDate   time.Time       `gorm:"type:date;not null"`
	Balance     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	BonusPoints int             `gorm:"not null;default:0"`
	PhotoURL    *string         `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return TableUsers
}
