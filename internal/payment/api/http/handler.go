package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/repository"
	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/service"
	"github.com/EzzioMoreira/guia-opentelemetry/platform/observability"
)

// Handler содержит HTTP-обработчики сервиса оплаты
type Handler struct {
	paymentService *service.PaymentService
	logger         *zap.Logger
}

// NewHandler создаёт новый HTTP handler
func NewHandler(paymentService *service.PaymentService, logger *zap.Logger) *Handler {
	return &Handler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// PaymentRequest представляет HTTP запрос на обработку платежа
type PaymentRequest struct {
	IDOrdem *int64 `json:"id_ordem"`
}

// PaymentResponse представляет платёж в HTTP ответе
type PaymentResponse struct {
	ID      int64  `json:"id"`
	IDOrdem int64  `json:"id_ordem"`
	Status  string `json:"status"`
}

func toPaymentResponse(payment repository.Payment) PaymentResponse {
	return PaymentResponse{
		ID:      payment.ID,
		IDOrdem: payment.OrderID,
		Status:  string(payment.Status),
	}
}

// PostPagamentos обрабатывает POST /pagamentos - обработка платежа
func (h *Handler) PostPagamentos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := observability.L(ctx, h.logger)

	var reqBody PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		log.Warn("JSON decode error", zap.Error(err))
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if reqBody.IDOrdem == nil {
		writeError(w, http.StatusBadRequest, "id_ordem is required")
		return
	}

	payment, err := h.paymentService.ProcessPayment(ctx, *reqBody.IDOrdem)
	if err != nil {
		log.Warn("Process payment failed", zap.Int64("order_id", *reqBody.IDOrdem), zap.Error(err))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPaymentResponse(payment))
}

// GetPagamento обрабатывает GET /pagamentos/{id} - получение платежа по ID
func (h *Handler) GetPagamento(w http.ResponseWriter, r *http.Request, idParam string) {
	ctx := r.Context()

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	payment, err := h.paymentService.GetPayment(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPaymentResponse(payment))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
