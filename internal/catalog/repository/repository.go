package repository

import (
	"context"
	"errors"
)

// Book представляет доменную модель книги каталога
// Это бизнес-сущность, не привязанная к HTTP или БД
type Book struct {
	ID    int64
	Title string
	Stock int32
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=BookRepository --dir=. --output=./mocks --outpkg=mocks

// BookRepository определяет интерфейс для работы с хранилищем книг
// Service слой зависит от этого интерфейса, а не от конкретной реализации
type BookRepository interface {
	// Create сохраняет книгу и возвращает её с присвоенным ID
	Create(ctx context.Context, book Book) (Book, error)

	// GetByID получает книгу по ID
	// Возвращает ErrNotFound, если книга не найдена
	GetByID(ctx context.Context, id int64) (Book, error)

	// List возвращает все книги в порядке добавления
	List(ctx context.Context) ([]Book, error)

	// Delete удаляет книгу и возвращает удалённую запись
	// Возвращает ErrNotFound, если книга не найдена
	Delete(ctx context.Context, id int64) (Book, error)

	// DecrementStock атомарно списывает один экземпляр со склада.
	// Возвращает книгу после списания, ErrNotFound если книги нет
	// и ErrOutOfStock если estoque уже 0 — остаток никогда не уходит в минус.
	DecrementStock(ctx context.Context, id int64) (Book, error)
}

// ErrNotFound возвращается, когда книга не найдена в хранилище
var ErrNotFound = errors.New("book not found")

// ErrOutOfStock возвращается при попытке списать книгу с нулевым остатком
var ErrOutOfStock = errors.New("book out of stock")
