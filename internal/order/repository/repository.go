package repository

import (
	"context"
	"errors"
)

// Status статус заказа в его жизненном цикле.
// Pendente → Concluído при одобренном платеже,
// Pendente → Pagamento Recusado при отклонённом платеже или сбое оплаты.
type Status string

const (
	// StatusPending заказ создан, платёж ещё не обработан
	StatusPending Status = "Pendente"
	// StatusCompleted платёж одобрен, заказ завершён
	StatusCompleted Status = "Concluído"
	// StatusPaymentDeclined платёж отклонён или сервис оплаты недоступен
	StatusPaymentDeclined Status = "Pagamento Recusado"
)

// Order представляет доменную модель заказа
type Order struct {
	ID     int64
	BookID int64
	Status Status
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=OrderRepository --dir=. --output=./mocks --outpkg=mocks

// OrderRepository определяет интерфейс для работы с хранилищем заказов
type OrderRepository interface {
	// Create сохраняет заказ и возвращает его с присвоенным ID
	Create(ctx context.Context, order Order) (Order, error)

	// UpdateStatus меняет статус заказа.
	// Возвращает ErrNotFound, если заказ не найден.
	UpdateStatus(ctx context.Context, id int64, status Status) (Order, error)

	// GetByID получает заказ по ID
	// Возвращает ErrNotFound, если заказ не найден
	GetByID(ctx context.Context, id int64) (Order, error)
}

// ErrNotFound возвращается, когда заказ не найден в хранилище
var ErrNotFound = errors.New("order not found")
