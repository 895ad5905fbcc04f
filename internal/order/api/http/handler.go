package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/order/repository"
	"github.com/EzzioMoreira/guia-opentelemetry/internal/order/service"
	"github.com/EzzioMoreira/guia-opentelemetry/platform/observability"
)

// Handler содержит HTTP-обработчики сервиса заказов
type Handler struct {
	orderService *service.OrderService
	logger       *zap.Logger
}

// NewHandler создаёт новый HTTP handler
func NewHandler(orderService *service.OrderService, logger *zap.Logger) *Handler {
	return &Handler{
		orderService: orderService,
		logger:       logger,
	}
}

// OrderRequest представляет HTTP запрос на создание заказа
type OrderRequest struct {
	IDLivro *int64 `json:"id_livro"`
}

// OrderResponse представляет заказ в HTTP ответе
type OrderResponse struct {
	ID      int64  `json:"id"`
	IDLivro int64  `json:"id_livro"`
	Status  string `json:"status"`
}

func toOrderResponse(order repository.Order) OrderResponse {
	return OrderResponse{
		ID:      order.ID,
		IDLivro: order.BookID,
		Status:  string(order.Status),
	}
}

// PostOrdens обрабатывает POST /ordens/ - оформление заказа
func (h *Handler) PostOrdens(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := observability.L(ctx, h.logger)

	var reqBody OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		log.Warn("JSON decode error", zap.Error(err))
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if reqBody.IDLivro == nil {
		writeError(w, http.StatusBadRequest, "id_livro is required")
		return
	}

	order, err := h.orderService.CreateOrder(ctx, *reqBody.IDLivro)
	if err != nil {
		log.Warn("Create order failed", zap.Int64("book_id", *reqBody.IDLivro), zap.Error(err))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOrderResponse(order))
}

// GetOrdem обрабатывает GET /ordens/{id} - получение заказа по ID
func (h *Handler) GetOrdem(w http.ResponseWriter, r *http.Request, idParam string) {
	ctx := r.Context()

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orderService.GetOrder(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
