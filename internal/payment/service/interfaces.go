package service

import "context"

// Authorization решение платёжного шлюза
type Authorization struct {
	// Approved true если шлюз одобрил платёж
	Approved bool
	// TransactionID референс транзакции шлюза
	TransactionID string
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Authorizer --dir=. --output=./mocks --outpkg=mocks
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=OrderClient --dir=. --output=./mocks --outpkg=mocks

// Authorizer принимает решение об одобрении платежа.
// Продакшн реализация - случайный исход (gateway.Random),
// тесты подставляют детерминированную.
type Authorizer interface {
	Authorize(ctx context.Context, orderID int64) (Authorization, error)
}

// OrderClient определяет интерфейс клиента сервиса заказов
type OrderClient interface {
	// OrderExists проверяет существование заказа.
	// Возвращает ErrOrderNotFound, если сервис заказов ответил 404.
	OrderExists(ctx context.Context, orderID int64) error
}
