package impl

import (
	"context"
	"log/slog"

	deliverycontext "citycard/internal/delivery/context"
	"citycard/internal/domain/entity"
	"citycard/internal/domain/repository"
	"citycard/internal/domain/rules"
	"citycard/internal/domain/service"
	"citycard/internal/errors"
	"citycard/internal/usecase"

	"go.uber.org/fx"
)

// weatherService implements the WeatherUsecase interface.
type weatherService struct {
	txManager repository.TransactionManager
	provider  service.WeatherProvider
	logger    *slog.Logger
}

// WeatherServiceParams holds dependencies for WeatherService, injected by Fx.
type WeatherServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Provider  service.WeatherProvider
	Logger    *slog.Logger
}

// NewWeatherService is the constructor for weatherService.
func NewWeatherService(params WeatherServiceParams) usecase.WeatherUsecase {
	return &weatherService{
		txManager: params.TxManager,
		provider:  params.Provider,
		logger:    params.Logger,
	}
}

func (srv *weatherService) GetWeather(ctx context.Context, city string) (*entity.Weather, error) {
	if !srv.provider.Configured() {
		return rules.PlaceholderWeather(), nil
	}

	resolved := rules.ResolveCity(city)

	reading, err := srv.provider.Current(ctx, resolved)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Weather lookup failed",
			slog.String("city", resolved),
			slog.Any("error", err),
		)

		return nil, errors.Wrapf(err, "weather lookup for %s", resolved)
	}

	return rules.WeatherFromReading(reading), nil
}

// SetWeatherCity stores the city as given. Aliases are resolved at lookup time.
func (srv *weatherService) SetWeatherCity(ctx context.Context, userID int64, city string) error {
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.PreferenceRepo().ReplaceWeatherCity(ctx, &entity.WeatherSetting{
			UserID: userID,
			City:   city,
		})
	}); err != nil {
		return translateRepositoryError(err)
	}

	return nil
}
