package weather

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"citycard/config"
	"citycard/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, baseURL, apiKey string) service.WeatherProvider {
	t.Helper()

	return NewOpenWeatherClient(ClientParams{
		Config: &config.Config{Weather: &config.WeatherConfig{
			APIKey:  apiKey,
			BaseURL: baseURL,
			Timeout: time.Second,
		}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestOpenWeatherClient_Configured(t *testing.T) {
	assert.False(t, newClient(t, "http://localhost", "").Configured())
	assert.True(t, newClient(t, "http://localhost", "key").Configured())
}

func TestOpenWeatherClient_Current(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "Moscow", query.Get("q"))
		assert.Equal(t, "secret", query.Get("appid"))
		assert.Equal(t, "metric", query.Get("units"))
		assert.Equal(t, "ru", query.Get("lang"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"weather":[{"id":501,"description":"дождь"}],"main":{"temp":12.6}}`))
	}))
	defer server.Close()

	reading, err := newClient(t, server.URL, "secret").Current(context.Background(), "Moscow")
	require.NoError(t, err)
	assert.InDelta(t, 12.6, reading.Temperature, 0.001)
	assert.Equal(t, "дождь", reading.Description)
	assert.Equal(t, 501, reading.ConditionCode)
}

func TestOpenWeatherClient_Current_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		contains string
	}{
		{"unknown city", http.StatusNotFound, `{"cod":"404","message":"city not found"}`, "city not found"},
		{"bad key", http.StatusUnauthorized, `{"cod":401,"message":"Invalid API key"}`, "401"},
		{"missing temperature", http.StatusOK, `{"weather":[{"id":800}]}`, "main.temp"},
		{"missing condition", http.StatusOK, `{"main":{"temp":4.2},"weather":[]}`, "weather.0.id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newClient(t, server.URL, "secret").Current(context.Background(), "Moscow")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
