//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	_ "github.com/jackc/pgx/v5/stdlib" // для goose миграций

	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/migrations"
	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/repository"
)

func TestRepository_Integration(t *testing.T) {
	ctx := context.Background()

	postgresContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("bookstore"),
		tcpostgres.WithUsername("bookstore"),
		tcpostgres.WithPassword("bookstore"),
	)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, postgresContainer.Terminate(ctx))
	}()

	dsn, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	defer db.Close()

	var pingErr error
	for i := 0; i < 10; i++ {
		pingErr = db.PingContext(ctx)
		if pingErr == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, pingErr, "Failed to ping database after retries")

	goose.SetBaseFS(migrations.FS)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.UpContext(ctx, db, "."), "Failed to run migrations")

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	repo := NewRepository(pool)

	t.Run("Create and GetByID", func(t *testing.T) {
		payment, err := repo.Create(ctx, repository.Payment{
			OrderID:       1,
			Status:        repository.StatusApproved,
			TransactionID: "a2f4bb0e-4a0c-4e1e-9a53-111111111111",
		})
		require.NoError(t, err)
		require.Equal(t, int64(1), payment.ID)

		got, err := repo.GetByID(ctx, payment.ID)
		require.NoError(t, err)
		require.Equal(t, int64(1), got.OrderID)
		require.Equal(t, repository.StatusApproved, got.Status)
		require.Equal(t, payment.TransactionID, got.TransactionID)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		require.True(t, errors.Is(err, repository.ErrNotFound), "Expected ErrNotFound, got: %v", err)
	})
}
