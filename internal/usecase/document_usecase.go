package usecase

import (
	"context"

	"citycard/internal/domain/entity"
)

// DocumentUsecase registers identity documents and building intercoms.
type DocumentUsecase interface {
	// AddPassport stores the passport and sets its ID.
	AddPassport(ctx context.Context, passport *entity.Passport) error

	// AddIntercom stores the intercom and sets its ID.
	AddIntercom(ctx context.Context, intercom *entity.Intercom) error

	// IdentityQR renders the user's identity as a PNG QR code.
	IdentityQR(ctx context.Context, userID int64) ([]byte, error)

	// PassportQR renders one of the user's passports as a PNG QR code.
	PassportQR(ctx context.Context, userID, passportID int64) ([]byte, error)
}
