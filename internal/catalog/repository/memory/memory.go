package memory

import (
	"context"
	"sync"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/catalog/repository"
)

// MemoryRepository реализует BookRepository используя in-memory хранилище
// Используется для разработки и тестирования
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	books  map[int64]repository.Book
	order  []int64 // порядок добавления для List
}

// NewMemoryRepository создаёт новый in-memory репозиторий
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID: 1,
		books:  make(map[int64]repository.Book),
	}
}

// Create сохраняет книгу в памяти, присваивая последовательный ID
func (r *MemoryRepository) Create(ctx context.Context, book repository.Book) (repository.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book.ID = r.nextID
	r.nextID++
	r.books[book.ID] = book
	r.order = append(r.order, book.ID)
	return book, nil
}

// GetByID получает книгу по ID из памяти
func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (repository.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, exists := r.books[id]
	if !exists {
		return repository.Book{}, repository.ErrNotFound
	}
	return book, nil
}

// List возвращает все книги в порядке добавления
func (r *MemoryRepository) List(ctx context.Context) ([]repository.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]repository.Book, 0, len(r.order))
	for _, id := range r.order {
		if book, exists := r.books[id]; exists {
			books = append(books, book)
		}
	}
	return books, nil
}

// Delete удаляет книгу и возвращает удалённую запись
func (r *MemoryRepository) Delete(ctx context.Context, id int64) (repository.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, exists := r.books[id]
	if !exists {
		return repository.Book{}, repository.ErrNotFound
	}
	delete(r.books, id)
	for i, bid := range r.order {
		if bid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return book, nil
}

// DecrementStock списывает один экземпляр, не допуская отрицательного остатка
func (r *MemoryRepository) DecrementStock(ctx context.Context, id int64) (repository.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, exists := r.books[id]
	if !exists {
		return repository.Book{}, repository.ErrNotFound
	}
	if book.Stock <= 0 {
		return repository.Book{}, repository.ErrOutOfStock
	}
	book.Stock--
	r.books[id] = book
	return book, nil
}
