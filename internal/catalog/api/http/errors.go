package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/catalog/repository"
	"github.com/EzzioMoreira/guia-opentelemetry/internal/catalog/service"
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

// writeServiceError маппит ошибки service слоя на HTTP статусы:
// валидация → 400, не найдено → 404, нулевой остаток → 409, остальное → 500
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidBook):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "book not found")
	case errors.Is(err, repository.ErrOutOfStock):
		writeError(w, http.StatusConflict, "book out of stock")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
