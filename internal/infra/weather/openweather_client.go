// Package weather talks to the OpenWeatherMap current-conditions endpoint.
package weather

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"citycard/config"
	deliverycontext "citycard/internal/delivery/context"
	"citycard/internal/domain/entity"
	"citycard/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"go.uber.org/fx"
)

const maxResponseBytes = 1 << 20

type openWeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientParams holds dependencies for the weather client, injected by Fx
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewOpenWeatherClient creates a WeatherProvider backed by OpenWeatherMap.
func NewOpenWeatherClient(params ClientParams) service.WeatherProvider {
	cfg := params.Config.Weather
	if cfg == nil {
		cfg = &config.WeatherConfig{}
	}

	return &openWeatherClient{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: params.Logger,
	}
}

func (c *openWeatherClient) Configured() bool {
	return c.apiKey != ""
}

// Current fetches metric conditions with Russian descriptions.
func (c *openWeatherClient) Current(ctx context.Context, city string) (*entity.WeatherReading, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse weather base url")
	}

	query := endpoint.Query()
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")
	query.Set("lang", "ru")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "weather request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read weather response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := gjson.GetBytes(body, "message").String()

		return nil, errors.Errorf("weather provider returned status %d: %s", resp.StatusCode, message)
	}

	temp := gjson.GetBytes(body, "main.temp")
	if !temp.Exists() {
		return nil, errors.New("weather response has no main.temp")
	}
	condition := gjson.GetBytes(body, "weather.0.id")
	if !condition.Exists() {
		return nil, errors.New("weather response has no weather.0.id")
	}

	reading := &entity.WeatherReading{
		Temperature:   temp.Float(),
		Description:   gjson.GetBytes(body, "weather.0.description").String(),
		ConditionCode: int(condition.Int()),
	}

	deliverycontext.GetLoggerOrDefault(ctx, c.logger).Debug("Weather fetched",
		slog.String("city", city),
		slog.Float64("temp", reading.Temperature),
	)

	return reading, nil
}
