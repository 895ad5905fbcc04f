package service

import "errors"

// ErrBookNotFound книга не найдена в каталоге
var ErrBookNotFound = errors.New("book not found")

// ErrBookOutOfStock у книги нулевой остаток, заказ невозможен
var ErrBookOutOfStock = errors.New("book out of stock")

// ErrPaymentUnavailable сервис оплаты недоступен или ответил ошибкой.
// Заказ при этом уже помечен как Pagamento Recusado.
var ErrPaymentUnavailable = errors.New("payment service unavailable")
