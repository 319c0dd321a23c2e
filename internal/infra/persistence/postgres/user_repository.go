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

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db     *gorm.DB
	schema Schema
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB, schema Schema) repository.UserRepository {
	return &userRepository{
		db:     db,
		schema: schema,
	}
}

func (repo *userRepository) users(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Table(repo.schema.Table(model.TableUsers))
}

// Create persists a new user. Balance and bonus points come from column defaults.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.users(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePhone
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID

	return nil
}

// FindByID retrieves a user by its ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.users(ctx).
		Where("id = ?", id).
		Take(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByPhone retrieves a user by the login phone.
func (repo *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.users(ctx).
		Where("phone = ?", phone).
		Take(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by phone")
	}

	return toUserDomain(&userM), nil
}

// UpdateProfile writes the supplied fields. An update that matches no row is not an error.
func (repo *userRepository) UpdateProfile(ctx context.Context, id int64, update entity.UserProfileUpdate) error {
	columns := profileColumns(update)
	if len(columns) == 0 {
		return nil
	}

	if err := repo.users(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(columns).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update user profile")
	}

	return nil
}

func profileColumns(update entity.UserProfileUpdate) map[string]any {
	columns := make(map[string]any)
	if update.FirstName != nil {
		columns["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		columns["last_name"] = *update.LastName
	}
	if update.MiddleName != nil {
		columns["middle_name"] = *update.MiddleName
	}
	if update.BirthDate != nil {
		columns["birth_date"] = *update.BirthDate
	}
	if update.PhotoURL != nil {
		columns["photo_url"] = nullableString(*update.PhotoURL)
	}

	return columns
}

// --- Mappers ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:          data.ID,
		Phone:       data.Phone,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		MiddleName:  data.MiddleName,
		BirthDate:   data.BirthDate,
		Balance:     data.Balance,
		BonusPoints: data.BonusPoints,
	}
	if data.PhotoURL != nil {
		user.PhotoURL = *data.PhotoURL
	}

	return user
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:          data.ID,
		Phone:       data.Phone,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		MiddleName:  data.MiddleName,
		BirthDate:   data.BirthDate,
		Balance:     data.Balance,
		BonusPoints: data.BonusPoints,
		PhotoURL:    nullableString(data.PhotoURL),
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
