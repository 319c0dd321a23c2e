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

// preferenceRepository implements the repository.PreferenceRepository interface.
type preferenceRepository struct {
	db     *gorm.DB
	schema Schema
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB, schema Schema) repository.PreferenceRepository {
	return &preferenceRepository{db: db, schema: schema}
}

func (repo *preferenceRepository) widgets(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Table(repo.schema.Table(model.TableWidgetSettings))
}

func (repo *preferenceRepository) weatherSettings(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Table(repo.schema.Table(model.TableWeatherSettings))
}

// ReplaceWidgets is delete-then-insert. Callers run it inside a transaction.
func (repo *preferenceRepository) ReplaceWidgets(ctx context.Context, userID int64, widgets []*entity.WidgetSetting) error {
	if err := repo.widgets(ctx).
		Where("user_id = ?", userID).
		Delete(&model.WidgetSettingModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete widget settings")
	}

	if len(widgets) == 0 {
		return nil
	}

	widgetModels := make([]*model.WidgetSettingModel, 0, len(widgets))
	for _, widget := range widgets {
		widgetModels = append(widgetModels, fromWidgetSettingDomain(userID, widget))
	}

	if err := repo.widgets(ctx).Create(&widgetModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create widget settings")
	}

	return nil
}

func (repo *preferenceRepository) FindWidgetsByUser(ctx context.Context, userID int64) ([]*entity.WidgetSetting, error) {
	var widgetModels []*model.WidgetSettingModel

	if err := repo.widgets(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&widgetModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find widget settings by user")
	}

	widgets := make([]*entity.WidgetSetting, 0, len(widgetModels))
	for _, widgetM := range widgetModels {
		widgets = append(widgets, toWidgetSettingDomain(widgetM))
	}

	return widgets, nil
}

// ReplaceWeatherCity is delete-then-insert. Callers run it inside a transaction.
func (repo *preferenceRepository) ReplaceWeatherCity(ctx context.Context, setting *entity.WeatherSetting) error {
	if err := repo.weatherSettings(ctx).
		Where("user_id = ?", setting.UserID).
		Delete(&model.WeatherSettingModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete weather setting")
	}

	settingM := &model.WeatherSettingModel{
		UserID: setting.UserID,
		City:   setting.City,
	}
	if err := repo.weatherSettings(ctx).Create(settingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create weather setting")
	}

	return nil
}

func (repo *preferenceRepository) FindWeatherCity(ctx context.Context, userID int64) (*entity.WeatherSetting, error) {
	var settingM model.WeatherSettingModel

	if err := repo.weatherSettings(ctx).
		Where("user_id = ?", userID).
		Take(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWeatherSettingNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find weather setting")
	}

	return &entity.WeatherSetting{
		UserID: settingM.UserID,
		City:   settingM.City,
	}, nil
}

// --- Mappers ---

func toWidgetSettingDomain(data *model.WidgetSettingModel) *entity.WidgetSetting {
	if data == nil {
		return nil
	}

	return &entity.WidgetSetting{
		UserID:     data.UserID,
		WidgetType: data.WidgetType,
		IsVisible:  data.IsVisible,
		Position:   data.Position,
	}
}

func fromWidgetSettingDomain(userID int64, data *entity.WidgetSetting) *model.WidgetSettingModel {
	return &model.WidgetSettingModel{
		UserID:     userID,
		WidgetType: data.WidgetType,
		IsVisible:  data.IsVisible,
		Position:   data.Position,
	}
}
