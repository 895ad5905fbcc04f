package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/order/repository"
	"github.com/EzzioMoreira/guia-opentelemetry/internal/order/service"
)

// errorResponse тело ответа при ошибке: {"error": "..."}
type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// writeServiceError маппит ошибки service слоя на HTTP статусы.
// Книга не найдена и нулевой остаток оба дают 404 (различимы по тексту),
// недоступный сервис оплаты - 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrBookNotFound):
		writeError(w, http.StatusNotFound, "book not found")
	case errors.Is(err, service.ErrBookOutOfStock):
		writeError(w, http.StatusNotFound, "book out of stock")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "order not found")
	case errors.Is(err, service.ErrPaymentUnavailable):
		writeError(w, http.StatusInternalServerError, "payment service unavailable")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
