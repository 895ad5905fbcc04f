package repository

import (
	"context"
	"errors"
)

// Status результат обработки платежа
type Status string

const (
	// StatusApproved платёж одобрен
	StatusApproved Status = "Aprovado"
	// StatusDeclined платёж отклонён
	StatusDeclined Status = "Recusado"
)

// Payment представляет доменную модель платежа
type Payment struct {
	ID      int64
	OrderID int64
	Status  Status
	// TransactionID референс транзакции платёжного шлюза
	TransactionID string
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PaymentRepository --dir=. --output=./mocks --outpkg=mocks

// PaymentRepository определяет интерфейс для работы с хранилищем платежей
type PaymentRepository interface {
	// Create сохраняет платёж и возвращает его с присвоенным ID
	Create(ctx context.Context, payment Payment) (Payment, error)

	// GetByID получает платёж по ID
	// Возвращает ErrNotFound, если платёж не найден
	GetByID(ctx context.Context, id int64) (Payment, error)
}

// ErrNotFound возвращается, когда платёж не найден в хранилище
var ErrNotFound = errors.New("payment not found")
