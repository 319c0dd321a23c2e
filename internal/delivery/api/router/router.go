// Package router contains routing and server setup for the action API.
package router

import (
	"log/slog"
	"net/http"

	"citycard/config"
	"citycard/internal/delivery/api/dispatch"
	"citycard/internal/delivery/api/router/handler"
	"citycard/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler     *handler.AccountHandler
	DocumentHandler    *handler.DocumentHandler
	WalletHandler      *handler.WalletHandler
	VehicleHandler     *handler.VehicleHandler
	WeatherHandler     *handler.WeatherHandler
	GovServicesHandler *handler.GovServicesHandler
	DashboardHandler   *handler.DashboardHandler
	Metrics            *metrics.Metrics
	Config             *config.Config
	Logger             *slog.Logger
}

// router holds the dispatcher and the operational endpoints.
type router struct {
	dispatcher *dispatch.Dispatcher
	metrics    *metrics.Metrics
	config     *config.Config
}

// NewRouter builds the route table from the injected handlers.
func NewRouter(params RouterParams) *router {
	d := dispatch.NewDispatcher(params.Metrics, params.Logger)

	account := params.AccountHandler
	d.Register("register", http.MethodPost, dispatch.OperationFunc(account.Register))
	d.Register("login", http.MethodPost, dispatch.OperationFunc(account.Login))
	d.Register("user-data", http.MethodGet, dispatch.OperationFunc(account.GetUserData))
	d.Register("update-user", http.MethodPut, dispatch.OperationFunc(account.UpdateUser))

	documents := params.DocumentHandler
	d.Register("add-passport", http.MethodPost, dispatch.OperationFunc(documents.AddPassport))
	d.Register("add-intercom", http.MethodPost, dispatch.OperationFunc(documents.AddIntercom))
	d.Register("identity-qr", http.MethodGet, dispatch.OperationFunc(documents.IdentityQR))
	d.Register("passport-qr", http.MethodGet, dispatch.OperationFunc(documents.PassportQR))

	wallet := params.WalletHandler
	d.Register("add-podorozhnik", http.MethodPost, dispatch.OperationFunc(wallet.AddTransitCard))
	d.Register("podorozhnik-topup", http.MethodPost, dispatch.OperationFunc(wallet.TopUp))
	d.Register("podorozhnik-pay", http.MethodPost, dispatch.OperationFunc(wallet.Pay))
	d.Register("add-bank-card", http.MethodPost, dispatch.OperationFunc(wallet.AddBankCard))

	vehicles := params.VehicleHandler
	d.Register("add-vehicle", http.MethodPost, dispatch.OperationFunc(vehicles.AddVehicle))
	d.Register("get-fines", http.MethodGet, dispatch.OperationFunc(vehicles.GetFines))

	weather := params.WeatherHandler
	d.Register("weather", http.MethodGet, dispatch.OperationFunc(weather.GetWeather))
	d.Register("set-weather-city", http.MethodPost, dispatch.OperationFunc(weather.SetWeatherCity))

	d.Register("gosuslugi", http.MethodGet, dispatch.OperationFunc(params.GovServicesHandler.GetGovServices))
	d.Register("widgets", http.MethodPost, dispatch.OperationFunc(params.DashboardHandler.SaveWidgets))

	return &router{
		dispatcher: d,
		metrics:    params.Metrics,
		config:     params.Config,
	}
}

// RegisterRoutes mounts the action endpoint and the operational endpoints.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	e.Any("/", r.dispatcher.Dispatch)
	e.Any("/api", r.dispatcher.Dispatch)
}
