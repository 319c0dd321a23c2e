// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"citycard/internal/domain/entity"
	"citycard/internal/errors"
)

var (
	// ErrUserNotFound is returned when no user matches, including when a child row names a missing owner.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicatePhone is returned when a user with the same phone already exists.
	ErrDuplicatePhone = errors.New("phone already registered")
)

// UserRepository defines the persistence operations for users.
type UserRepository interface {
	// Create inserts the user and sets its generated ID.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByPhone retrieves a user by the login phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// UpdateProfile writes only the non-nil fields of update.
	UpdateProfile(ctx context.Context, id int64, update entity.UserProfileUpdate) error
}
