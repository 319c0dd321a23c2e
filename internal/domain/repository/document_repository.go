package repository

import (
	"context"

	"citycard/internal/domain/entity"
	"citycard/internal/errors"
)

// ErrPassportNotFound is returned when a passport does not exist.
var ErrPassportNotFound = errors.New("passport not found")

// PassportRepository defines the persistence operations for passports.
type PassportRepository interface {
	Create(ctx context.Context, passport *entity.Passport) error
	FindByID(ctx context.Context, id int64) (*entity.Passport, error)
	// FindByUser lists a user's passports in insertion order.
	FindByUser(ctx context.Context, userID int64) ([]*entity.Passport, error)
}

// IntercomRepository defines the persistence operations for intercoms.
type IntercomRepository interface {
	Create(ctx context.Context, intercom *entity.Intercom) error
	// FindByUser lists a user's intercoms in insertion order.
	FindByUser(ctx context.Context, userID int64) ([]*entity.Intercom, error)
}
