package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/catalog/repository"
	"github.com/EzzioMoreira/guia-opentelemetry/internal/catalog/service"
	"github.com/EzzioMoreira/guia-opentelemetry/platform/observability"
)

// Handler содержит HTTP-обработчики каталога книг
// Зависит от service слоя, но не знает о деталях реализации (БД и т.д.)
type Handler struct {
	catalogService *service.CatalogService
	logger         *zap.Logger
}

// NewHandler создаёт новый HTTP handler
func NewHandler(catalogService *service.CatalogService, logger *zap.Logger) *Handler {
	return &Handler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// BookRequest представляет HTTP запрос на создание книги
// Поля-указатели, чтобы отличать отсутствующее значение от нулевого
type BookRequest struct {
	Titulo  *string `json:"titulo"`
	Estoque *int32  `json:"estoque"`
}

// BookResponse представляет книгу в HTTP ответе
type BookResponse struct {
	ID      int64  `json:"id"`
	Titulo  string `json:"titulo"`
	Estoque int32  `json:"estoque"`
}

func toBookResponse(book repository.Book) BookResponse {
	return BookResponse{
		ID:      book.ID,
		Titulo:  book.Title,
		Estoque: book.Stock,
	}
}

// PostLivros обрабатывает POST /livros/ - создание книги
func (h *Handler) PostLivros(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := observability.L(ctx, h.logger)

	var reqBody BookRequest
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		log.Warn("JSON decode error", zap.Error(err))
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if reqBody.Titulo == nil || reqBody.Estoque == nil {
		writeError(w, http.StatusBadRequest, "titulo and estoque are required")
		return
	}

	book, err := h.catalogService.CreateBook(ctx, service.CreateBookInput{
		Title: *reqBody.Titulo,
		Stock: *reqBody.Estoque,
	})
	if err != nil {
		log.Warn("Create book failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBookResponse(book))
}

// GetLivro обрабатывает GET /livros/{id} - получение книги по ID
func (h *Handler) GetLivro(w http.ResponseWriter, r *http.Request, idParam string) {
	ctx := r.Context()

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid book id")
		return
	}

	book, err := h.catalogService.GetBook(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(book))
}

// ListLivros обрабатывает GET /livros/ - список всех книг
func (h *Handler) ListLivros(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	books, err := h.catalogService.ListBooks(ctx)
	if err != nil {
		observability.L(ctx, h.logger).Error("List books failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}

	resp := make([]BookResponse, 0, len(books))
	for _, book := range books {
		resp = append(resp, toBookResponse(book))
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteLivro обрабатывает DELETE /livros/{id} - удаление книги
func (h *Handler) DeleteLivro(w http.ResponseWriter, r *http.Request, idParam string) {
	ctx := r.Context()

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid book id")
		return
	}

	book, err := h.catalogService.DeleteBook(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(book))
}

// PostBaixaEstoque обрабатывает POST /livros/{id}/baixa-estoque - списание экземпляра
func (h *Handler) PostBaixaEstoque(w http.ResponseWriter, r *http.Request, idParam string) {
	ctx := r.Context()

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid book id")
		return
	}

	book, err := h.catalogService.WriteDownStock(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(book))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
