package usecase

import (
	"context"

	"citycard/internal/domain/entity"
)

// GovServicesOutput is the government services snapshot of a user.
type GovServicesOutput struct {
	Taxes    []*entity.Tax
	Benefits []*entity.Benefit
}

// GovServicesUsecase serves the government services snapshot.
type GovServicesUsecase interface {
	// GetGovServices returns taxes and benefits, seeding placeholder records on first use.
	GetGovServices(ctx context.Context, userID int64) (*GovServicesOutput, error)
}
