package memory

import (
	"context"
	"sync"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/order/repository"
)

// MemoryRepository реализует OrderRepository используя in-memory хранилище
// Используется для разработки и тестирования
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	orders map[int64]repository.Order
}

// NewMemoryRepository создаёт новый in-memory репозиторий
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID: 1,
		orders: make(map[int64]repository.Order),
	}
}

// Create сохраняет заказ в памяти, присваивая последовательный ID
func (r *MemoryRepository) Create(ctx context.Context, order repository.Order) (repository.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	r.orders[order.ID] = order
	return order, nil
}

// UpdateStatus меняет статус заказа
func (r *MemoryRepository) UpdateStatus(ctx context.Context, id int64, status repository.Status) (repository.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, exists := r.orders[id]
	if !exists {
		return repository.Order{}, repository.ErrNotFound
	}
	order.Status = status
	r.orders[id] = order
	return order, nil
}

// GetByID получает заказ по ID из памяти
func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (repository.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, exists := r.orders[id]
	if !exists {
		return repository.Order{}, repository.ErrNotFound
	}
	return order, nil
}
