package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/repository"
	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/service"
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

// writeServiceError маппит ошибки service слоя на HTTP статусы
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "order not found")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "payment not found")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
