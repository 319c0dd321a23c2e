package usecase

import (
	"context"

	"citycard/internal/domain/entity"
)

// WeatherUsecase serves the weather widget.
type WeatherUsecase interface {
	// GetWeather resolves city aliases and returns current conditions,
	// or a placeholder when no provider is configured.
	GetWeather(ctx context.Context, city string) (*entity.Weather, error)

	// SetWeatherCity replaces the user's preferred city.
	SetWeatherCity(ctx context.Context, userID int64, city string) error
}
