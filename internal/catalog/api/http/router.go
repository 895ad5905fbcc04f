package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	platformhealth "github.com/EzzioMoreira/guia-opentelemetry/platform/health/http"
	"github.com/EzzioMoreira/guia-opentelemetry/platform/observability"
)

// NewRouter создаёт и настраивает HTTP роутер каталога книг.
// readiness - функция для проверки готовности сервиса (например, проверка БД).
// tel и logger используются observability middleware (span + метрики на запрос,
// trace_id в логах).
func NewRouter(handler *Handler, readiness func() bool, tel *observability.Telemetry, logger *zap.Logger) chi.Router {
	router := chi.NewRouter()

	router.Use(observability.HTTPMiddleware(tel, logger))

	router.Route("/livros", func(r chi.Router) {
		r.Post("/", handler.PostLivros)
		r.Get("/", handler.ListLivros)
		r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
			handler.GetLivro(w, r, chi.URLParam(r, "id"))
		})
		r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
			handler.DeleteLivro(w, r, chi.URLParam(r, "id"))
		})
		r.Post("/{id}/baixa-estoque", func(w http.ResponseWriter, r *http.Request) {
			handler.PostBaixaEstoque(w, r, chi.URLParam(r, "id"))
		})
	})

	router.Get("/health", platformhealth.Handler(readiness))

	return router
}
