package main

import (
	"context"
	"log/slog"
	"os"

	"citycard/config"
	"citycard/internal/delivery"
	"citycard/internal/delivery/api"
	"citycard/internal/delivery/api/router/handler"
	"citycard/internal/domain/synthetic"
	logs "citycard/internal/infra/log"
	"citycard/internal/infra/metrics"
	"citycard/internal/infra/persistence/postgres"
	"citycard/internal/infra/pubsub"
	"citycard/internal/infra/qrcode"
	"citycard/internal/infra/weather"
	"citycard/internal/usecase/impl"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewSchema,
		),
		metrics.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			qrcode.NewQRCodeServiceFromConfig,
			weather.NewOpenWeatherClient,
			newGenerator,
		),
	)
}

// newGenerator seeds the synthetic record generator from config. A zero seed uses the clock.
func newGenerator(cfg *config.Config) *synthetic.Generator {
	var seed int64
	if cfg.Synthetic != nil {
		seed = cfg.Synthetic.Seed
	}

	return synthetic.New(synthetic.NewSource(seed))
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewDocumentService,
			impl.NewWalletService,
			impl.NewVehicleService,
			impl.NewWeatherService,
			impl.NewGovServicesService,
			impl.NewDashboardService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewDocumentHandler,
			handler.NewWalletHandler,
			handler.NewVehicleHandler,
			handler.NewWeatherHandler,
			handler.NewGovServicesHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
