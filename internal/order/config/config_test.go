package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8081", cfg.HTTPAddr)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.BookURL)
	assert.Equal(t, "http://127.0.0.1:8082", cfg.PaymentURL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BOOK_URL", "http://catalog:8080")
	t.Setenv("PAYMENT_URL", "http://payment:8082")
	t.Setenv("ORDER_POSTGRES_DSN", "postgres://u:p@db:5432/orders?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://catalog:8080", cfg.BookURL)
	assert.Equal(t, "http://payment:8082", cfg.PaymentURL)
	assert.Equal(t, "postgres://u:p@db:5432/orders?sslmode=disable", cfg.PostgresDSN)
}

func TestValidateDownstreamURLs(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.BookURL = ""
	assert.Error(t, cfg.Validate())

	cfg, err = Load()
	require.NoError(t, err)
	cfg.PaymentURL = ""
	assert.Error(t, cfg.Validate())
}
