package handler

import (
	"log/slog"

	"citycard/internal/delivery/api/response"
	"citycard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WeatherHandlerParams holds dependencies for WeatherHandler, injected by Fx.
type WeatherHandlerParams struct {
	fx.In

	WeatherUC usecase.WeatherUsecase
	Logger    *slog.Logger
}

// WeatherHandler serves the weather widget actions.
type WeatherHandler struct {
	weatherUC usecase.WeatherUsecase
	logger    *slog.Logger
}

// NewWeatherHandler is the constructor for WeatherHandler
func NewWeatherHandler(params WeatherHandlerParams) *WeatherHandler {
	return &WeatherHandler{
		weatherUC: params.WeatherUC,
		logger:    params.Logger,
	}
}

// WeatherQuery reads the weather query parameters. An empty city means the default one.
type WeatherQuery struct {
	City string `query:"city"`
}

// SetWeatherCityRequest is the body of set-weather-city.
type SetWeatherCityRequest struct {
	UserID int64  `json:"userId" validate:"required"`
	City   string `json:"city" validate:"required"`
}

type weatherResponse struct {
	Temp       int    `json:"temp"`
	Condition  string `json:"condition"`
	Icon       string `json:"icon"`
	NeedsSetup bool   `json:"needsSetup"`
}

// GetWeather handles the weather action.
func (h *WeatherHandler) GetWeather(c echo.Context) error {
	var req WeatherQuery
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	weather, err := h.weatherUC.GetWeather(c.Request().Context(), req.City)
	if err != nil {
		return err
	}

	return response.OK(c, weatherResponse{
		Temp:       weather.Temp,
		Condition:  weather.Condition,
		Icon:       weather.Icon,
		NeedsSetup: weather.NeedsSetup,
	})
}

// SetWeatherCity handles the set-weather-city action.
func (h *WeatherHandler) SetWeatherCity(c echo.Context) error {
	var req SetWeatherCityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.weatherUC.SetWeatherCity(c.Request().Context(), req.UserID, req.City); err != nil {
		return err
	}

	return response.Success(c)
}
