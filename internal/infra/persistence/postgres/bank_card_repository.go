package postgres

import (
	"context"

	"citycard/internal/domain/entity"
	domainerrors "citycard/internal/domain/errors"
	"citycard/internal/domain/repository"
	"citycard/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// bankCardRepository implements the repository.BankCardRepository interface.
type bankCardRepository struct {
	db     *gorm.DB
	schema Schema
}

// NewBankCardRepository is the constructor for bankCardRepository.
func NewBankCardRepository(db *gorm.DB, schema Schema) repository.BankCardRepository {
	return &bankCardRepository{db: db, schema: schema}
}

func (repo *bankCardRepository) bankCards(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Table(repo.schema.Table(model.TableBankCards))
}

func (repo *bankCardRepository) Create(ctx context.Context, card *entity.BankCard) error {
	cardM := fromBankCardDomain(card)

	if err := repo.bankCards(ctx).Create(cardM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create bank card")
	}

	card.ID = cardM.ID

	return nil
}

func (repo *bankCardRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.BankCard, error) {
	var cardModels []*model.BankCardModel

	if err := repo.bankCards(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&cardModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find bank cards by user")
	}

	cards := make([]*entity.BankCard, 0, len(cardModels))
	for _, cardM := range cardModels {
		cards = append(cards, toBankCardDomain(cardM))
	}

	return cards, nil
}

// --- Mappers ---

func toBankCardDomain(data *model.BankCardModel) *entity.BankCard {
	if data == nil {
		return nil
	}

	return &entity.BankCard{
		ID:          data.ID,
		UserID:      data.UserID,
		CardNumber:  data.CardNumber,
		HolderName:  data.HolderName,
		ExpireDate:  data.ExpireDate,
		BankName:    data.BankName,
		IsSber:      data.IsSber,
		SberSpasibo: data.SberSpasibo,
	}
}

func fromBankCardDomain(data *entity.BankCard) *model.BankCardModel {
	if data == nil {
		return nil
	}

	return &model.BankCardModel{
		ID:          data.ID,
		UserID:      data.UserID,
		CardNumber:  data.CardNumber,
		HolderName:  data.HolderName,
		ExpireDate:  data.ExpireDate,
		BankName:    data.BankName,
		IsSber:      data.IsSber,
		SberSpasibo: data.SberSpasibo,
	}
}
