package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/order/repository"
	"github.com/EzzioMoreira/guia-opentelemetry/platform/observability"
)

// OrderService содержит бизнес-логику оформления заказа.
// Оркестрирует каталог книг и сервис оплаты через REST клиентов.
type OrderService struct {
	repo          repository.OrderRepository
	bookClient    BookClient
	paymentClient PaymentClient
	tel           *observability.Telemetry
	logger        *zap.Logger

	ordersCreated metric.Int64Counter
	orderDuration metric.Float64Histogram
}

// NewOrderService создаёт новый экземпляр OrderService
func NewOrderService(
	repo repository.OrderRepository,
	bookClient BookClient,
	paymentClient PaymentClient,
	tel *observability.Telemetry,
	logger *zap.Logger,
) *OrderService {
	s := &OrderService{
		repo:          repo,
		bookClient:    bookClient,
		paymentClient: paymentClient,
		tel:           tel,
		logger:        logger,
	}

	var err error
	s.ordersCreated, err = tel.Meter().Int64Counter("bookstore.ordens.criadas",
		metric.WithDescription("Total de ordens criadas"),
	)
	if err != nil {
		logger.Warn("Failed to create orders counter", zap.Error(err))
	}
	s.orderDuration, err = tel.Meter().Float64Histogram("bookstore.duracao.ordem",
		metric.WithDescription("Duração do fluxo de criação de ordem"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		logger.Warn("Failed to create order duration histogram", zap.Error(err))
	}

	return s
}

// CreateOrder выполняет полный цикл оформления заказа:
// проверка книги в каталоге → запись Pendente → платёж →
// финальный статус (Concluído / Pagamento Recusado) → списание экземпляра.
func (s *OrderService) CreateOrder(ctx context.Context, bookID int64) (repository.Order, error) {
	ctx, span := s.tel.Tracer().Start(ctx, "criar_ordem")
	defer span.End()

	span.SetAttributes(attribute.Int64("livro.id", bookID))
	log := observability.L(ctx, s.logger)
	start := time.Now()

	book, err := s.bookClient.GetBook(ctx, bookID)
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			log.Warn("Book not found in catalog", zap.Int64("book_id", bookID))
			return repository.Order{}, err
		}
		log.Error("Catalog request failed", zap.Int64("book_id", bookID), zap.Error(err))
		return repository.Order{}, fmt.Errorf("failed to check book: %w", err)
	}
	if book.Stock <= 0 {
		log.Warn("Book out of stock", zap.Int64("book_id", bookID), zap.String("title", book.Title))
		return repository.Order{}, ErrBookOutOfStock
	}

	order, err := s.repo.Create(ctx, repository.Order{
		BookID: bookID,
		Status: repository.StatusPending,
	})
	if err != nil {
		return repository.Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	span.SetAttributes(attribute.Int64("ordem.id", order.ID))
	log.Info("Order created", zap.Int64("order_id", order.ID), zap.Int64("book_id", bookID))

	result, err := s.paymentClient.Process(ctx, order.ID)
	if err != nil {
		// Компенсация: заказ не остаётся висеть в Pendente
		log.Error("Payment request failed, marking order declined",
			zap.Int64("order_id", order.ID), zap.Error(err))
		if _, updErr := s.repo.UpdateStatus(ctx, order.ID, repository.StatusPaymentDeclined); updErr != nil {
			log.Error("Failed to mark order declined after payment failure",
				zap.Int64("order_id", order.ID), zap.Error(updErr))
		}
		s.recordOrder(ctx, start, repository.StatusPaymentDeclined)
		return repository.Order{}, fmt.Errorf("%w: %s", ErrPaymentUnavailable, err)
	}

	status := repository.StatusPaymentDeclined
	if result.Approved {
		status = repository.StatusCompleted
	}

	order, err = s.repo.UpdateStatus(ctx, order.ID, status)
	if err != nil {
		return repository.Order{}, fmt.Errorf("failed to update order status: %w", err)
	}
	span.SetAttributes(attribute.String("ordem.status", string(order.Status)))
	log.Info("Order finalized",
		zap.Int64("order_id", order.ID),
		zap.Int64("payment_id", result.ID),
		zap.String("status", string(order.Status)))

	// Списание экземпляра после одобренного платежа. Best-effort:
	// платёж уже прошёл, расхождение остатка только логируем.
	if order.Status == repository.StatusCompleted {
		if err := s.bookClient.WriteDownStock(ctx, bookID); err != nil {
			log.Error("Stock write-down failed after approved payment",
				zap.Int64("order_id", order.ID),
				zap.Int64("book_id", bookID),
				zap.Error(err))
		}
	}

	s.recordOrder(ctx, start, order.Status)
	return order, nil
}

// GetOrder получает заказ по ID
func (s *OrderService) GetOrder(ctx context.Context, id int64) (repository.Order, error) {
	ctx, span := s.tel.Tracer().Start(ctx, "buscar_ordem_por_id")
	defer span.End()

	span.SetAttributes(attribute.Int64("ordem.id", id))

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			observability.L(ctx, s.logger).Warn("Order not found", zap.Int64("order_id", id))
			return repository.Order{}, err
		}
		return repository.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (s *OrderService) recordOrder(ctx context.Context, start time.Time, status repository.Status) {
	attrs := metric.WithAttributes(attribute.String("status", string(status)))
	if s.ordersCreated != nil {
		s.ordersCreated.Add(ctx, 1, attrs)
	}
	if s.orderDuration != nil {
		s.orderDuration.Record(ctx, float64(time.Since(start).Milliseconds()), attrs)
	}
}
