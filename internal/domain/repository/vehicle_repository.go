package repository

import (
	"context"

	"citycard/internal/domain/entity"
	"citycard/internal/errors"
)

// ErrVehicleNotFound is returned when a vehicle does not exist.
var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleRepository defines the persistence operations for vehicles.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	FindByID(ctx context.Context, id int64) (*entity.Vehicle, error)
	// FindByUser lists a user's vehicles in insertion order.
	FindByUser(ctx context.Context, userID int64) ([]*entity.Vehicle, error)
}

// FineRepository defines the persistence operations for fines.
type FineRepository interface {
	// CreateBatch inserts all fines and sets their IDs. An empty slice is a no-op.
	CreateBatch(ctx context.Context, fines []*entity.Fine) error
	// FindByVehicle lists a vehicle's fines, most recent first.
	FindByVehicle(ctx context.Context, vehicleID int64) ([]*entity.Fine, error)
}
