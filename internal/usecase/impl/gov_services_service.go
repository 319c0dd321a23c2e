package impl

import (
	"context"
	"log/slog"

	deliverycontext "citycard/internal/delivery/context"
	"citycard/internal/domain/entity"
	"citycard/internal/domain/repository"
	"citycard/internal/domain/synthetic"
	"citycard/internal/usecase"

	"go.uber.org/fx"
)

// govServicesService implements the GovServicesUsecase interface.
type govServicesService struct {
	txManager repository.TransactionManager
	generator *synthetic.Generator
	logger    *slog.Logger
}

// GovServicesServiceParams holds dependencies for GovServicesService, injected by Fx.
type GovServicesServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Generator *synthetic.Generator
	Logger    *slog.Logger
}

// NewGovServicesService is the constructor for govServicesService.
func NewGovServicesService(params GovServicesServiceParams) usecase.GovServicesUsecase {
	return &govServicesService{
		txManager: params.TxManager,
		generator: params.Generator,
		logger:    params.Logger,
	}
}

// GetGovServices lists taxes and benefits. Empty lists are seeded from the catalogs
// and read back, so the response always carries stored ids.
func (srv *govServicesService) GetGovServices(ctx context.Context, userID int64) (*usecase.GovServicesOutput, error) {
	output := &usecase.GovServicesOutput{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		govRepo := repoFactory.GovServicesRepo()

		taxes, err := govRepo.FindTaxesByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(taxes) == 0 {
			if generated := srv.generator.Taxes(userID); len(generated) > 0 {
				if err := govRepo.CreateTaxes(ctx, generated); err != nil {
					return err
				}
				if taxes, err = govRepo.FindTaxesByUser(ctx, userID); err != nil {
					return err
				}
			}
		}

		benefits, err := govRepo.FindBenefitsByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(benefits) == 0 {
			if generated := srv.generator.Benefits(userID); len(generated) > 0 {
				if err := govRepo.CreateBenefits(ctx, generated); err != nil {
					return err
				}
				if benefits, err = govRepo.FindBenefitsByUser(ctx, userID); err != nil {
					return err
				}
			}
		}

		output.Taxes = taxes
		output.Benefits = benefits

		return nil
	})
	if err != nil {
		return nil, translateRepositoryError(err)
	}

	if output.Taxes == nil {
		output.Taxes = []*entity.Tax{}
	}
	if output.Benefits == nil {
		output.Benefits = []*entity.Benefit{}
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Government services snapshot",
		slog.Int64("userID", userID),
		slog.Int("taxes", len(output.Taxes)),
		slog.Int("benefits", len(output.Benefits)),
	)

	return output, nil
}
