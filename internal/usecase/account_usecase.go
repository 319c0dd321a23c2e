// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"citycard/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Phone      string
	FirstName  string
	LastName   string
	MiddleName string
	BirthDate  time.Time
}

// --- Output DTOs ---

// UserDataOutput is the aggregate profile: the user plus every owned record.
// Slices are never nil.
type UserDataOutput struct {
	User         *entity.User
	Passports    []*entity.Passport
	TransitCards []*entity.TransitCard
	BankCards    []*entity.BankCard
	Vehicles     []*entity.Vehicle
	Intercoms    []*entity.Intercom
	Widgets      []*entity.WidgetSetting
	WeatherCity  *string // Nil when the user never chose one.
}

// AccountUsecase defines registration, login and profile operations.
// There is no credential check: the phone number identifies the caller.
type AccountUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	Login(ctx context.Context, phone string) (*entity.User, error)
	GetUserData(ctx context.Context, userID int64) (*UserDataOutput, error)
	UpdateUser(ctx context.Context, userID int64, update entity.UserProfileUpdate) error
}
