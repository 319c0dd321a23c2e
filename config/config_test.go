package config

import (
	"testing"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestApplyLegacyEnv(t *testing.T) {
	cfg := &Config{}

	applyLegacyEnv(cfg, envMap(map[string]string{
		"DATABASE_URL":    "postgres://u:p@db:5432/app",
		"MAIN_DB_SCHEMA":  "t_p_city",
		"WEATHER_API_KEY": "owm-key",
	}))

	assert.Equal(t, "postgres://u:p@db:5432/app", cfg.Store.DSN)
	assert.Equal(t, "t_p_city", cfg.Store.Schema)
	require.NotNil(t, cfg.Weather)
	assert.Equal(t, "owm-key", cfg.Weather.APIKey)
}

func TestApplyLegacyEnv_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Store:   StoreConfig{DSN: "postgres://explicit"},
		Weather: &WeatherConfig{APIKey: "explicit-key"},
	}

	applyLegacyEnv(cfg, envMap(map[string]string{
		"DATABASE_URL":    "postgres://legacy",
		"WEATHER_API_KEY": "legacy-key",
	}))

	assert.Equal(t, "postgres://explicit", cfg.Store.DSN)
	assert.Equal(t, "explicit-key", cfg.Weather.APIKey)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Metrics: &MetricsConfig{Enabled: true}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultSchema, cfg.Store.Schema)
	require.NotNil(t, cfg.Weather)
	assert.Equal(t, defaultWeatherBaseURL, cfg.Weather.BaseURL)
	assert.Equal(t, defaultWeatherTimeout, cfg.Weather.Timeout)
	assert.Empty(t, cfg.Weather.APIKey)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{Store: StoreConfig{Schema: "public", DSN: "postgres://x"}}
		cfg.HTTP.Port = 8080

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "schema with quote", mutate: func(cfg *Config) { cfg.Store.Schema = `public"; drop` }, wantErr: "not a valid identifier"},
		{name: "dotted schema", mutate: func(cfg *Config) { cfg.Store.Schema = "a.b" }, wantErr: "not a valid identifier"},
		{name: "empty schema", mutate: func(cfg *Config) { cfg.Store.Schema = "" }, wantErr: "not a valid identifier"},
		{name: "zero port", mutate: func(cfg *Config) { cfg.HTTP.Port = 0 }, wantErr: "http.port"},
		{name: "no connection", mutate: func(cfg *Config) { cfg.Store.DSN = "" }, wantErr: "store.dsn or postgres"},
		{
			name: "postgres block instead of dsn",
			mutate: func(cfg *Config) {
				cfg.Store.DSN = ""
				cfg.Postgres = &postgres.DBConn{}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
