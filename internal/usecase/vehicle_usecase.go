package usecase

import (
	"context"

	"citycard/internal/domain/entity"
)

// VehicleUsecase registers vehicles and reads their fines.
type VehicleUsecase interface {
	// AddVehicle stores the vehicle, sets its ID and may attach generated fines.
	AddVehicle(ctx context.Context, vehicle *entity.Vehicle) ([]*entity.Fine, error)

	// GetFines lists fines, most recent first. A non-nil userID must own the vehicle.
	GetFines(ctx context.Context, vehicleID int64, userID *int64) ([]*entity.Fine, error)
}
