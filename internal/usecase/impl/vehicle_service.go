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

const vehicleResource = "vehicle"

// vehicleService implements the VehicleUsecase interface.
type vehicleService struct {
	txManager repository.TransactionManager
	generator *synthetic.Generator
	logger    *slog.Logger
}

// VehicleServiceParams holds dependencies for VehicleService, injected by Fx.
type VehicleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Generator *synthetic.Generator
	Logger    *slog.Logger
}

// NewVehicleService is the constructor for vehicleService.
func NewVehicleService(params VehicleServiceParams) usecase.VehicleUsecase {
	return &vehicleService{
		txManager: params.TxManager,
		generator: params.Generator,
		logger:    params.Logger,
	}
}

func (srv *vehicleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddVehicle stores the vehicle and its generated fines together.
// Fines are drawn once, at registration.
func (srv *vehicleService) AddVehicle(ctx context.Context, vehicle *entity.Vehicle) ([]*entity.Fine, error) {
	var fines []*entity.Fine

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.VehicleRepo().Create(ctx, vehicle); err != nil {
			return err
		}

		fines = srv.generator.Fines(vehicle.ID)

		return repoFactory.FineRepo().CreateBatch(ctx, fines)
	}); err != nil {
		return nil, translateRepositoryError(err)
	}

	srv.log(ctx).Info("Vehicle added",
		slog.Int64("userID", vehicle.UserID),
		slog.Int64("vehicleID", vehicle.ID),
		slog.Int("fines", len(fines)),
	)

	return fines, nil
}

// GetFines lists a vehicle's fines. An unknown vehicle has none unless userID is given.
func (srv *vehicleService) GetFines(ctx context.Context, vehicleID int64, userID *int64) ([]*entity.Fine, error) {
	var fines []*entity.Fine

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if userID == nil {
			warnOwnershipNotVerified(ctx, srv.log(ctx), vehicleResource, vehicleID)
		} else {
			vehicle, err := repoFactory.VehicleRepo().FindByID(ctx, vehicleID)
			if err != nil {
				return err
			}
			if err := checkOwnership(ctx, srv.log(ctx), vehicleResource, vehicleID, vehicle.UserID, userID); err != nil {
				return err
			}
		}

		found, err := repoFactory.FineRepo().FindByVehicle(ctx, vehicleID)
		if err != nil {
			return err
		}
		fines = found

		return nil
	})
	if err != nil {
		return nil, translateRepositoryError(err)
	}

	if fines == nil {
		fines = []*entity.Fine{}
	}

	return fines, nil
}
