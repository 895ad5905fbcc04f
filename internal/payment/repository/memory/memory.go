package memory

import (
	"context"
	"sync"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/repository"
)

// MemoryRepository реализует PaymentRepository используя in-memory хранилище
// Используется для разработки и тестирования
type MemoryRepository struct {
	mu       sync.RWMutex
	nextID   int64
	payments map[int64]repository.Payment
}

// NewMemoryRepository создаёт новый in-memory репозиторий
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID:   1,
		payments: make(map[int64]repository.Payment),
	}
}

// Create сохраняет платёж в памяти, присваивая последовательный ID
func (r *MemoryRepository) Create(ctx context.Context, payment repository.Payment) (repository.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment.ID = r.nextID
	r.nextID++
	r.payments[payment.ID] = payment
	return payment, nil
}

// GetByID получает платёж по ID из памяти
func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (repository.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, exists := r.payments[id]
	if !exists {
		return repository.Payment{}, repository.ErrNotFound
	}
	return payment, nil
}
