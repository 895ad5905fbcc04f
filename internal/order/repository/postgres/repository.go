package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/order/repository"
)

// Repository реализует OrderRepository используя PostgreSQL
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository создаёт новый PostgreSQL репозиторий
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{
		pool: pool,
	}
}

// Create сохраняет заказ в PostgreSQL, ID присваивает база
func (r *Repository) Create(ctx context.Context, order repository.Order) (repository.Order, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO ordens (id_livro, status)
		 VALUES ($1, $2)
		 RETURNING id`,
		order.BookID, order.Status).Scan(&order.ID)
	if err != nil {
		return repository.Order{}, err
	}
	return order, nil
}

// UpdateStatus меняет статус заказа
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status repository.Status) (repository.Order, error) {
	var order repository.Order
	err := r.pool.QueryRow(ctx,
		`UPDATE ordens
		 SET status = $2
		 WHERE id = $1
		 RETURNING id, id_livro, status`,
		id, status).Scan(&order.ID, &order.BookID, &order.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.Order{}, repository.ErrNotFound
		}
		return repository.Order{}, err
	}
	return order, nil
}

// GetByID получает заказ по ID из PostgreSQL
func (r *Repository) GetByID(ctx context.Context, id int64) (repository.Order, error) {
	var order repository.Order
	err := r.pool.QueryRow(ctx,
		`SELECT id, id_livro, status
		 FROM ordens
		 WHERE id = $1`,
		id).Scan(&order.ID, &order.BookID, &order.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.Order{}, repository.ErrNotFound
		}
		return repository.Order{}, err
	}
	return order, nil
}
