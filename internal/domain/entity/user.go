// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is the account holder. The phone number is the only identity proof.
type User struct {
	ID          int64           // Serial identifier assigned by the store.
	Phone       string          // Login key, unique across users.
	FirstName   string          // Given name.
	LastName    string          // Family name.
	MiddleName  string          // Patronymic, empty when not supplied.
	BirthDate   time.Time       // Date of birth, date part only.
	Balance     decimal.Decimal // Informational account balance. No operation mutates it.
	BonusPoints int             // Informational bonus points. No operation mutates them.
	PhotoURL    string          // Reference to the profile photo.
}

// UserProfileUpdate carries the recognized profile fields of a partial update.
// A nil field is left untouched.
type UserProfileUpdate struct {
	FirstName  *string
	LastName   *string
	MiddleName *string
	BirthDate  *time.Time
	PhotoURL   *string
}

// IsEmpty reports whether the update names no field at all.
func (u UserProfileUpdate) IsEmpty() bool {
	return u.FirstName == nil &&
		u.LastName == nil &&
		u.MiddleName == nil &&
		u.BirthDate == nil &&
		u.PhotoURL == nil
}
