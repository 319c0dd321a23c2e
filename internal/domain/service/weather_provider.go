package service

import (
	"context"

	"citycard/internal/domain/entity"
)

// WeatherProvider fetches current conditions from an external service.
type WeatherProvider interface {
	// Configured reports whether a credential is available. Without one the caller serves a placeholder.
	Configured() bool

	// Current returns the reading for a canonical city name.
	Current(ctx context.Context, city string) (*entity.WeatherReading, error)
}
