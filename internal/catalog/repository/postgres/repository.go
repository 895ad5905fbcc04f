package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/catalog/repository"
)

// Repository реализует BookRepository используя PostgreSQL
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository создаёт новый PostgreSQL репозиторий
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{
		pool: pool,
	}
}

// Create сохраняет книгу в PostgreSQL, ID присваивает база
func (r *Repository) Create(ctx context.Context, book repository.Book) (repository.Book, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO livros (titulo, estoque)
		 VALUES ($1, $2)
		 RETURNING id`,
		book.Title, book.Stock).Scan(&book.ID)
	if err != nil {
		return repository.Book{}, err
	}
	return book, nil
}

// GetByID получает книгу по ID из PostgreSQL
func (r *Repository) GetByID(ctx context.Context, id int64) (repository.Book, error) {
	var book repository.Book
	err := r.pool.QueryRow(ctx,
		`SELECT id, titulo, estoque
		 FROM livros
		 WHERE id = $1`,
		id).Scan(&book.ID, &book.Title, &book.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.Book{}, repository.ErrNotFound
		}
		return repository.Book{}, err
	}
	return book, nil
}

// List возвращает все книги в порядке добавления (по ID)
func (r *Repository) List(ctx context.Context) ([]repository.Book, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, titulo, estoque
		 FROM livros
		 ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := make([]repository.Book, 0)
	for rows.Next() {
		var book repository.Book
		if err := rows.Scan(&book.ID, &book.Title, &book.Stock); err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return books, nil
}

// Delete удаляет книгу и возвращает удалённую запись
func (r *Repository) Delete(ctx context.Context, id int64) (repository.Book, error) {
	var book repository.Book
	err := r.pool.QueryRow(ctx,
		`DELETE FROM livros
		 WHERE id = $1
		 RETURNING id, titulo, estoque`,
		id).Scan(&book.ID, &book.Title, &book.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.Book{}, repository.ErrNotFound
		}
		return repository.Book{}, err
	}
	return book, nil
}

// DecrementStock списывает один экземпляр одним условным UPDATE.
// Конкурентные заказы не могут увести остаток в минус: строка с estoque = 0
// под условие не попадает.
func (r *Repository) DecrementStock(ctx context.Context, id int64) (repository.Book, error) {
	var book repository.Book
	err := r.pool.QueryRow(ctx,
		`UPDATE livros
		 SET estoque = estoque - 1
		 WHERE id = $1 AND estoque > 0
		 RETURNING id, titulo, estoque`,
		id).Scan(&book.ID, &book.Title, &book.Stock)
	if err == nil {
		return book, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return repository.Book{}, err
	}

	// UPDATE не нашёл строку: либо книги нет, либо остаток нулевой
	if _, err := r.GetByID(ctx, id); err != nil {
		return repository.Book{}, err
	}
	return repository.Book{}, repository.ErrOutOfStock
}
