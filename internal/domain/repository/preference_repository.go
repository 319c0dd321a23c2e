package repository

import (
	"context"

	"citycard/internal/domain/entity"
	"citycard/internal/errors"
)

// ErrWeatherSettingNotFound is returned when a user has not chosen a weather city.
var ErrWeatherSettingNotFound = errors.New("weather setting not found")

// PreferenceRepository defines the persistence operations for dashboard preferences.
type PreferenceRepository interface {
	// ReplaceWidgets deletes every widget of the user and inserts widgets in order.
	ReplaceWidgets(ctx context.Context, userID int64, widgets []*entity.WidgetSetting) error

	// FindWidgetsByUser lists a user's widgets in insertion order.
	FindWidgetsByUser(ctx context.Context, userID int64) ([]*entity.WidgetSetting, error)

	// ReplaceWeatherCity deletes the user's weather setting and inserts setting.
	ReplaceWeatherCity(ctx context.Context, setting *entity.WeatherSetting) error

	// FindWeatherCity returns the user's weather setting.
	FindWeatherCity(ctx context.Context, userID int64) (*entity.WeatherSetting, error)
}
