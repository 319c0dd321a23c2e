package repository

import (
	"context"

	"citycard/internal/domain/entity"
)

// GovServicesRepository defines the persistence operations for taxes and benefits.
type GovServicesRepository interface {
	FindTaxesByUser(ctx context.Context, userID int64) ([]*entity.Tax, error)
	CreateTaxes(ctx context.Context, taxes []*entity.Tax) error
	FindBenefitsByUser(ctx context.Context, userID int64) ([]*entity.Benefit, error)
	CreateBenefits(ctx context.Context, benefits []*entity.Benefit) error
}
