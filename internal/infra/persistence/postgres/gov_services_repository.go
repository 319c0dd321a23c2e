package postgres

import (
	"context"

	"citycard/internal/domain/entity"
	domainerrors "citycard/internal/domain/errors"
	"citycard/internal/domain/repository"
	"citycard/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// govServicesRepository implements the repository.GovServicesRepository interface.
type govServicesRepository struct {
	db     *gorm.DB
	schema Schema
}

// NewGovServicesRepository is the constructor for govServicesRepository.
func NewGovServicesRepository(db *gorm.DB, schema Schema) repository.GovServicesRepository {
	return &govServicesRepository{db: db, schema: schema}
}

func (repo *govServicesRepository) taxes(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Table(repo.schema.Table(model.TableTaxes))
}

func (repo *govServicesRepository) benefits(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Table(repo.schema.Table(model.TableBenefits))
}

func (repo *govServicesRepository) FindTaxesByUser(ctx context.Context, userID int64) ([]*entity.Tax, error) {
	var taxModels []*model.TaxModel

	if err := repo.taxes(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&taxModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find taxes by user")
	}

	taxes := make([]*entity.Tax, 0, len(taxModels))
	for _, taxM := range taxModels {
		taxes = append(taxes, toTaxDomain(taxM))
	}

	return taxes, nil
}

func (repo *govServicesRepository) CreateTaxes(ctx context.Context, taxes []*entity.Tax) error {
	if len(taxes) == 0 {
		return nil
	}

	taxModels := make([]*model.TaxModel, 0, len(taxes))
	for _, tax := range taxes {
		taxModels = append(taxModels, fromTaxDomain(tax))
	}

	if err := repo.taxes(ctx).Create(&taxModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create taxes")
	}

	for i, taxM := range taxModels {
		taxes[i].ID = taxM.ID
	}

	return nil
}

func (repo *govServicesRepository) FindBenefitsByUser(ctx context.Context, userID int64) ([]*entity.Benefit, error) {
	var benefitModels []*model.BenefitModel

	if err := repo.benefits(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&benefitModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find benefits by user")
	}

	benefits := make([]*entity.Benefit, 0, len(benefitModels))
	for _, benefitM := range benefitModels {
		benefits = append(benefits, toBenefitDomain(benefitM))
	}

	return benefits, nil
}

func (repo *govServicesRepository) CreateBenefits(ctx context.Context, benefits []*entity.Benefit) error {
	if len(benefits) == 0 {
		return nil
	}

	benefitModels := make([]*model.BenefitModel, 0, len(benefits))
	for _, benefit := range benefits {
		benefitModels = append(benefitModels, fromBenefitDomain(benefit))
	}

	if err := repo.benefits(ctx).Create(&benefitModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create benefits")
	}

	for i, benefitM := range benefitModels {
		benefits[i].ID = benefitM.ID
	}

	return nil
}

// --- Mappers ---

func toTaxDomain(data *model.TaxModel) *entity.Tax {
	return &entity.Tax{
		ID:      data.ID,
		UserID:  data.UserID,
		TaxType: data.TaxType,
		Amount:  data.Amount,
		Year:    data.Year,
		IsPaid:  data.IsPaid,
		DueDate: data.DueDate,
	}
}

func fromTaxDomain(data *entity.Tax) *model.TaxModel {
	return &model.TaxModel{
		ID:      data.ID,
		UserID:  data.UserID,
		TaxType: data.TaxType,
		Amount:  data.Amount,
		Year:    data.Year,
		IsPaid:  data.IsPaid,
		DueDate: data.DueDate,
	}
}

func toBenefitDomain(data *model.BenefitModel) *entity.Benefit {
	return &entity.Benefit{
		ID:          data.ID,
		UserID:      data.UserID,
		BenefitType: data.BenefitType,
		Status:      data.Status,
		Description: data.Description,
		Amount:      data.Amount,
	}
}

func fromBenefitDomain(data *entity.Benefit) *model.BenefitModel {
	return &model.BenefitModel{
		ID:          data.ID,
		UserID:      data.UserID,
		BenefitType: data.BenefitType,
		Status:      data.Status,
		Description: data.Description,
		Amount:      data.Amount,
	}
}
