package postgres

import (
	"context"

	"citycard/internal/domain/entity"
	domainerrors "citycard/internal/domain/errors"
	"citycard/internal/domain/repository"
	"citycard/internal/errors"
	"citycard/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// vehicleRepository implements the repository.VehicleRepository interface.
type vehicleRepository struct {
	db     *gorm.DB
	schema Schema
}

// NewVehicleRepository is the constructor for vehicleRepository.
func NewVehicleRepository(db *gorm.DB, schema Schema) repository.VehicleRepository {
	return &vehicleRepository{db: db, schema: schema}
}

func (repo *vehicleRepository) vehicles(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Table(repo.schema.Table(model.TableVehicles))
}

func (repo *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	vehicleM := fromVehicleDomain(vehicle)

	if err := repo.vehicles(ctx).Create(vehicleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vehicle")
	}

	vehicle.ID = vehicleM.ID

	return nil
}

func (repo *vehicleRepository) FindByID(ctx context.Context, id int64) (*entity.Vehicle, error) {
	var vehicleM model.VehicleModel

	if err := repo.vehicles(ctx).
		Where("id = ?", id).
		Take(&vehicleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVehicleNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find vehicle by ID")
	}

	return toVehicleDomain(&vehicleM), nil
}

func (repo *vehicleRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Vehicle, error) {
	var vehicleModels []*model.VehicleModel

	if err := repo.vehicles(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&vehicleModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find vehicles by user")
	}

	vehicles := make([]*entity.Vehicle, 0, len(vehicleModels))
	for _, vehicleM := range vehicleModels {
		vehicles = append(vehicles, toVehicleDomain(vehicleM))
	}

	return vehicles, nil
}

// fineRepository implements the repository.FineRepository interface.
type fineRepository struct {
	db     *gorm.DB
	schema Schema
}

// NewFineRepository is the constructor for fineRepository.
func NewFineRepository(db *gorm.DB, schema Schema) repository.FineRepository {
	return &fineRepository{db: db, schema: schema}
}

func (repo *fineRepository) fines(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Table(repo.schema.Table(model.TableFines))
}

// CreateBatch inserts every fine with one statement.
func (repo *fineRepository) CreateBatch(ctx context.Context, fines []*entity.Fine) error {
	if len(fines) == 0 {
		return nil
	}

	fineModels := make([]*model.FineModel, 0, len(fines))
	for _, fine := range fines {
		fineModels = append(fineModels, fromFineDomain(fine))
	}

	if err := repo.fines(ctx).Create(&fineModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVehicleNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create fines")
	}

	for i, fineM := range fineModels {
		fines[i].ID = fineM.ID
	}

	return nil
}

func (repo *fineRepository) FindByVehicle(ctx context.Context, vehicleID int64) ([]*entity.Fine, error) {
	var fineModels []*model.FineModel

	if err := repo.fines(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("date DESC, id DESC").
		Find(&fineModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find fines by vehicle")
	}

	fines := make([]*entity.Fine, 0, len(fineModels))
	for _, fineM := range fineModels {
		fines = append(fines, toFineDomain(fineM))
	}

	return fines, nil
}

// --- Mappers ---

func toVehicleDomain(data *model.VehicleModel) *entity.Vehicle {
	if data == nil {
		return nil
	}

	return &entity.Vehicle{
		ID:          data.ID,
		UserID:      data.UserID,
		PlateNumber: data.PlateNumber,
		Brand:       data.Brand,
		Model:       data.Model,
		Year:        data.Year,
	}
}

func fromVehicleDomain(data *entity.Vehicle) *model.VehicleModel {
	if data == nil {
		return nil
	}

	return &model.VehicleModel{
		ID:          data.ID,
		UserID:      data.UserID,
		PlateNumber: data.PlateNumber,
		Brand:       data.Brand,
		Model:       data.Model,
		Year:        data.Year,
	}
}

func toFineDomain(data *model.FineModel) *entity.Fine {
	if data == nil {
		return nil
	}

	return &entity.Fine{
		ID:          data.ID,
		VehicleID:   data.VehicleID,
		FineNumber:  data.FineNumber,
		Amount:      data.Amount,
		Description: data.Description,
		Date:        data.Date,
		Location:    data.Location,
		IsPaid:      data.IsPaid,
	}
}

func fromFineDomain(data *entity.Fine) *model.FineModel {
	if data == nil {
		return nil
	}

	return &model.FineModel{
		ID:          data.ID,
		VehicleID:   data.VehicleID,
		FineNumber:  data.FineNumber,
		Amount:      data.Amount,
		Description: data.Description,
		Date:        data.Date,
		Location:    data.Location,
		IsPaid:      data.IsPaid,
	}
}
