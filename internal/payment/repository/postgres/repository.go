package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/repository"
)

// Repository реализует PaymentRepository используя PostgreSQL
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository создаёт новый PostgreSQL репозиторий
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{
		pool: pool,
	}
}

// Create сохраняет платёж в PostgreSQL, ID присваивает база
func (r *Repository) Create(ctx context.Context, payment repository.Payment) (repository.Payment, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO pagamentos (id_ordem, status, transacao)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		payment.OrderID, payment.Status, payment.TransactionID).Scan(&payment.ID)
	if err != nil {
		return repository.Payment{}, err
	}
	return payment, nil
}

// GetByID получает платёж по ID из PostgreSQL
func (r *Repository) GetByID(ctx context.Context, id int64) (repository.Payment, error) {
	var payment repository.Payment
	err := r.pool.QueryRow(ctx,
		`SELECT id, id_ordem, status, transacao
		 FROM pagamentos
		 WHERE id = $1`,
		id).Scan(&payment.ID, &payment.OrderID, &payment.Status, &payment.TransactionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.Payment{}, repository.ErrNotFound
		}
		return repository.Payment{}, err
	}
	return payment, nil
}
