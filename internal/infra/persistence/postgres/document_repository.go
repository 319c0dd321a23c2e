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

// passportRepository implements the repository.PassportRepository interface.
type passportRepository struct {
	db     *gorm.DB
	schema Schema
}

// NewPassportRepository is the constructor for passportRepository.
func NewPassportRepository(db *gorm.DB, schema Schema) repository.PassportRepository {
	return &passportRepository{db: db, schema: schema}
}

func (repo *passportRepository) passports(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Table(repo.schema.Table(model.TablePassports))
}

func (repo *passportRepository) Create(ctx context.Context, passport *entity.Passport) error {
	passportM := fromPassportDomain(passport)

	if err := repo.passports(ctx).Create(passportM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create passport")
	}

	passport.ID = passportM.ID

	return nil
}

func (repo *passportRepository) FindByID(ctx context.Context, id int64) (*entity.Passport, error) {
	var passportM model.PassportModel

	if err := repo.passports(ctx).
		Where("id = ?", id).
		Take(&passportM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPassportNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find passport by ID")
	}

	return toPassportDomain(&passportM), nil
}

func (repo *passportRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Passport, error) {
	var passportModels []*model.PassportModel

	if err := repo.passports(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&passportModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find passports by user")
	}

	passports := make([]*entity.Passport, 0, len(passportModels))
	for _, passportM := range passportModels {
		passports = append(passports, toPassportDomain(passportM))
	}

	return passports, nil
}

// intercomRepository implements the repository.IntercomRepository interface.
type intercomRepository struct {
	db     *gorm.DB
	schema Schema
}

// NewIntercomRepository is the constructor for intercomRepository.
func NewIntercomRepository(db *gorm.DB, schema Schema) repository.IntercomRepository {
	return &intercomRepository{db: db, schema: schema}
}

func (repo *intercomRepository) intercoms(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Table(repo.schema.Table(model.TableIntercoms))
}

func (repo *intercomRepository) Create(ctx context.Context, intercom *entity.Intercom) error {
	intercomM := fromIntercomDomain(intercom)

	if err := repo.intercoms(ctx).Create(intercomM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create intercom")
	}

	intercom.ID = intercomM.ID

	return nil
}

func (repo *intercomRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Intercom, error) {
	var intercomModels []*model.IntercomModel

	if err := repo.intercoms(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&intercomModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find intercoms by user")
	}

	intercoms := make([]*entity.Intercom, 0, len(intercomModels))
	for _, intercomM := range intercomModels {
		intercoms = append(intercoms, toIntercomDomain(intercomM))
	}

	return intercoms, nil
}

// --- Mappers ---

func toPassportDomain(data *model.PassportModel) *entity.Passport {
	if data == nil {
		return nil
	}

	return &entity.Passport{
		ID:     data.ID,
		UserID: data.UserID,
		Series: data.Series,
		Number: data.Number,
		INN:    data.INN,
	}
}

func fromPassportDomain(data *entity.Passport) *model.PassportModel {
	if data == nil {
		return nil
	}

	return &model.PassportModel{
		ID:     data.ID,
		UserID: data.UserID,
		Series: data.Series,
		Number: data.Number,
		INN:    data.INN,
	}
}

func toIntercomDomain(data *model.IntercomModel) *entity.Intercom {
	if data == nil {
		return nil
	}

	return &entity.Intercom{
		ID:        data.ID,
		UserID:    data.UserID,
		City:      data.City,
		Street:    data.Street,
		House:     data.House,
		Apartment: data.Apartment,
		Entrance:  data.Entrance,
		Brand:     data.Brand,
		Provider:  data.Provider,
		ImageURL:  data.ImageURL,
	}
}

func fromIntercomDomain(data *entity.Intercom) *model.IntercomModel {
	if data == nil {
		return nil
	}

	return &model.IntercomModel{
		ID:        data.ID,
		UserID:    data.UserID,
		City:      data.City,
		Street:    data.Street,
		House:     data.House,
		Apartment: data.Apartment,
		Entrance:  data.Entrance,
		Brand:     data.Brand,
		Provider:  data.Provider,
		ImageURL:  data.ImageURL,
	}
}
