package service

import "context"

// Book данные книги, получаемые от сервиса каталога
type Book struct {
	ID    int64
	Title string
	Stock int32
}

// PaymentResult результат обработки платежа сервисом оплаты
type PaymentResult struct {
	// ID платежа в сервисе оплаты
	ID int64
	// Approved true если платёж одобрен
	Approved bool
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=BookClient --dir=. --output=./mocks --outpkg=mocks
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PaymentClient --dir=. --output=./mocks --outpkg=mocks

// BookClient определяет интерфейс клиента сервиса каталога книг
type BookClient interface {
	// GetBook получает книгу по ID.
	// Возвращает ErrBookNotFound, если каталог ответил 404.
	GetBook(ctx context.Context, id int64) (Book, error)

	// WriteDownStock списывает один экземпляр книги после завершённого заказа
	WriteDownStock(ctx context.Context, id int64) error
}

// PaymentClient определяет интерфейс клиента сервиса оплаты
type PaymentClient interface {
	// Process запрашивает обработку платежа для заказа.
	// Ошибка означает недоступность сервиса оплаты, а не отклонённый
	// платёж — отклонение приходит как PaymentResult{Approved: false}.
	Process(ctx context.Context, orderID int64) (PaymentResult, error)
}
