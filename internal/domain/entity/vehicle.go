package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle is a car registered by a user.
type Vehicle struct {
	ID          int64
	UserID      int64
	PlateNumber string
	Brand       string
	Model       string
	Year        *int // Nil when the owner did not supply it.
}

// Fine is a traffic violation attached to a vehicle. Immutable once written.
type Fine struct {
	ID          int64
	VehicleID   int64
	FineNumber  string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Location    string
	IsPaid      bool
}
