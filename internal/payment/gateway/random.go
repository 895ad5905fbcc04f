package gateway

import (
	"context"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/service"
)

// Random - платёжный шлюз-симулятор: одобряет платёж с вероятностью 50%.
// Каждой попытке присваивается uuid транзакции, как у настоящего шлюза.
type Random struct{}

// NewRandom создаёт шлюз со случайным исходом
func NewRandom() *Random {
	return &Random{}
}

// Authorize принимает случайное решение об одобрении платежа
func (g *Random) Authorize(ctx context.Context, orderID int64) (service.Authorization, error) {
	return service.Authorization{
		Approved:      rand.IntN(2) == 0,
		TransactionID: uuid.NewString(),
	}, nil
}
