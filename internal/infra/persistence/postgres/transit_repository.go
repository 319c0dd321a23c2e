package postgres

import (
	"context"

	"citycard/internal/domain/entity"
	domainerrors "citycard/internal/domain/errors"
	"citycard/internal/domain/repository"
	"citycard/internal/errors"
	"citycard/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// transitCardRepository implements the repository.TransitCardRepository interface.
type transitCardRepository struct {
	db     *gorm.DB
	schema Schema
}

// NewTransitCardRepository is the constructor for transitCardRepository.
func NewTransitCardRepository(db *gorm.DB, schema Schema) repository.TransitCardRepository {
	return &transitCardRepository{db: db, schema: schema}
}

func (repo *transitCardRepository) cards(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Table(repo.schema.Table(model.TableTransitCards))
}

func (repo *transitCardRepository) transactions(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Table(repo.schema.Table(model.TableTransitTransactions))
}

func (repo *transitCardRepository) Create(ctx context.Context, card *entity.TransitCard) error {
	cardM := fromTransitCardDomain(card)

	if err := repo.cards(ctx).Create(cardM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transit card")
	}

	card.ID = cardM.ID

	return nil
}

func (repo *transitCardRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.TransitCard, error) {
	var cardModels []*model.TransitCardModel

	if err := repo.cards(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&cardModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find transit cards by user")
	}

	cards := make([]*entity.TransitCard, 0, len(cardModels))
	for _, cardM := range cardModels {
		cards = append(cards, toTransitCardDomain(cardM))
	}

	return cards, nil
}

// FindByIDForUpdate takes a row lock (SELECT ... FOR UPDATE) held until the transaction ends.
func (repo *transitCardRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.TransitCard, error) {
	var cardM model.TransitCardModel

	if err := repo.cards(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Take(&cardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransitCardNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to lock transit card")
	}

	return toTransitCardDomain(&cardM), nil
}

// AdjustBalance applies delta in the database and returns the stored result.
func (repo *transitCardRepository) AdjustBalance(ctx context.Context, id int64, delta decimal.Decimal) (decimal.Decimal, error) {
	var cardM model.TransitCardModel

	result := repo.cards(ctx).
		Model(&cardM).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "balance"}}}).
		Where("id = ?", id).
		Update("balance", gorm.Expr("balance + ?", delta))

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return decimal.Zero, domainerrors.ErrInsufficientFunds
		}

		return decimal.Zero, domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust transit card balance")
	}

	if result.RowsAffected == 0 {
		return decimal.Zero, repository.ErrTransitCardNotFound
	}

	return cardM.Balance, nil
}

func (repo *transitCardRepository) AppendTransaction(ctx context.Context, tx *entity.TransitTransaction) error {
	txM := fromTransitTransactionDomain(tx)

	if err := repo.transactions(ctx).Create(txM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTransitCardNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append transit transaction")
	}

	tx.ID = txM.ID

	return nil
}

// --- Mappers ---

func toTransitCardDomain(data *model.TransitCardModel) *entity.TransitCard {
	if data == nil {
		return nil
	}

	return &entity.TransitCard{
		ID:         data.ID,
		UserID:     data.UserID,
		CardNumber: data.CardNumber,
		Balance:    data.Balance,
	}
}

func fromTransitCardDomain(data *entity.TransitCard) *model.TransitCardModel {
	if data == nil {
		return nil
	}

	return &model.TransitCardModel{
		ID:         data.ID,
		UserID:     data.UserID,
		CardNumber: data.CardNumber,
		Balance:    data.Balance,
	}
}

func fromTransitTransactionDomain(data *entity.TransitTransaction) *model.TransitTransactionModel {
	if data == nil {
		return nil
	}

	return &model.TransitTransactionModel{
		ID:          data.ID,
		CardID:      data.CardID,
		Amount:      data.Amount,
		Type:        string(data.Type),
		Description: data.Description,
	}
}
