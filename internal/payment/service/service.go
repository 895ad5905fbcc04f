package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/repository"
	"github.com/EzzioMoreira/guia-opentelemetry/platform/observability"
)

// ErrOrderNotFound заказ не найден в сервисе заказов
var ErrOrderNotFound = errors.New("order not found")

// PaymentService содержит бизнес-логику обработки платежей
type PaymentService struct {
	repo        repository.PaymentRepository
	orderClient OrderClient
	authorizer  Authorizer
	tel         *observability.Telemetry
	logger      *zap.Logger

	paymentsProcessed metric.Int64Counter
}

// NewPaymentService создаёт новый экземпляр PaymentService
func NewPaymentService(
	repo repository.PaymentRepository,
	orderClient OrderClient,
	authorizer Authorizer,
	tel *observability.Telemetry,
	logger *zap.Logger,
) *PaymentService {
	s := &PaymentService{
		repo:        repo,
		orderClient: orderClient,
		authorizer:  authorizer,
		tel:         tel,
		logger:      logger,
	}

	var err error
	s.paymentsProcessed, err = tel.Meter().Int64Counter("bookstore.pagamentos.processados",
		metric.WithDescription("Total de pagamentos processados"),
	)
	if err != nil {
		logger.Warn("Failed to create payments counter", zap.Error(err))
	}

	return s
}

// ProcessPayment обрабатывает платёж: проверяет заказ в сервисе заказов,
// спрашивает решение у шлюза и сохраняет результат
func (s *PaymentService) ProcessPayment(ctx context.Context, orderID int64) (repository.Payment, error) {
	ctx, span := s.tel.Tracer().Start(ctx, "processar_pagamento")
	defer span.End()

	span.SetAttributes(attribute.Int64("ordem.id", orderID))
	log := observability.L(ctx, s.logger)

	if err := s.orderClient.OrderExists(ctx, orderID); err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			log.Warn("Order not found", zap.Int64("order_id", orderID))
			return repository.Payment{}, err
		}
		log.Error("Order check failed", zap.Int64("order_id", orderID), zap.Error(err))
		return repository.Payment{}, fmt.Errorf("failed to check order: %w", err)
	}

	auth, err := s.authorizer.Authorize(ctx, orderID)
	if err != nil {
		return repository.Payment{}, fmt.Errorf("failed to authorize payment: %w", err)
	}

	status := repository.StatusDeclined
	if auth.Approved {
		status = repository.StatusApproved
	}

	payment, err := s.repo.Create(ctx, repository.Payment{
		OrderID:       orderID,
		Status:        status,
		TransactionID: auth.TransactionID,
	})
	if err != nil {
		return repository.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("pagamento.id", payment.ID),
		attribute.String("pagamento.status", string(payment.Status)),
	)
	if s.paymentsProcessed != nil {
		s.paymentsProcessed.Add(ctx, 1,
			metric.WithAttributes(attribute.String("status", string(payment.Status))))
	}

	log.Info("Payment processed",
		zap.Int64("payment_id", payment.ID),
		zap.Int64("order_id", orderID),
		zap.String("status", string(payment.Status)),
		zap.String("transaction_id", payment.TransactionID))
	return payment, nil
}

// GetPayment получает платёж по ID
func (s *PaymentService) GetPayment(ctx context.Context, id int64) (repository.Payment, error) {
	ctx, span := s.tel.Tracer().Start(ctx, "buscar_pagamento_por_id")
	defer span.End()

	span.SetAttributes(attribute.Int64("pagamento.id", id))

	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			observability.L(ctx, s.logger).Warn("Payment not found", zap.Int64("payment_id", id))
			return repository.Payment{}, err
		}
		return repository.Payment{}, fmt.Errorf("failed to get payment: %w", err)
	}
	return payment, nil
}
