package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	platformconfig "github.com/EzzioMoreira/guia-opentelemetry/platform/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, platformconfig.EnvLocal, cfg.AppEnv)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.OTelEnabled)
	assert.Equal(t, 1.0, cfg.OTelSamplingRatio)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "docker")
	t.Setenv("HTTP_ADDR", "0.0.0.0:9090")
	t.Setenv("CATALOG_POSTGRES_DSN", "postgres://u:p@db:5432/catalog?sslmode=disable")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")
	t.Setenv("OTEL_SAMPLING_RATIO", "0.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, platformconfig.EnvDocker, cfg.AppEnv)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTPAddr)
	assert.Equal(t, "postgres://u:p@db:5432/catalog?sslmode=disable", cfg.PostgresDSN)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.OTelEnabled)
	assert.Equal(t, "collector:4317", cfg.OTelEndpoint)
	assert.Equal(t, 0.5, cfg.OTelSamplingRatio)
}

func TestValidate(t *testing.T) {
	valid := Config{
		AppEnv:            platformconfig.EnvLocal,
		HTTPAddr:          "0.0.0.0:8080",
		PostgresDSN:       "postgres://u:p@localhost:5432/db",
		ShutdownTimeout:   5 * time.Second,
		OTelSamplingRatio: 1.0,
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "invalid env",
			mutate:  func(c *Config) { c.AppEnv = "production" },
			wantErr: true,
		},
		{
			name:    "empty http addr",
			mutate:  func(c *Config) { c.HTTPAddr = "" },
			wantErr: true,
		},
		{
			name:    "empty dsn",
			mutate:  func(c *Config) { c.PostgresDSN = "" },
			wantErr: true,
		},
		{
			name:    "zero shutdown timeout",
			mutate:  func(c *Config) { c.ShutdownTimeout = 0 },
			wantErr: true,
		},
		{
			name: "sampling ratio above 1 with otel enabled",
			mutate: func(c *Config) {
				c.OTelEnabled = true
				c.OTelSamplingRatio = 1.5
			},
			wantErr: true,
		},
		{
			name: "sampling ratio ignored when otel disabled",
			mutate: func(c *Config) {
				c.OTelEnabled = false
				c.OTelSamplingRatio = 42
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
