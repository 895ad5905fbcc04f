package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	platformhealth "github.com/EzzioMoreira/guia-opentelemetry/platform/health/http"
	"github.com/EzzioMoreira/guia-opentelemetry/platform/observability"
)

// NewRouter создаёт и настраивает HTTP роутер сервиса оплаты
func NewRouter(handler *Handler, readiness func() bool, tel *observability.Telemetry, logger *zap.Logger) chi.Router {
	router := chi.NewRouter()

	router.Use(observability.HTTPMiddleware(tel, logger))

	router.Route("/pagamentos", func(r chi.Router) {
		r.Post("/", handler.PostPagamentos)
		r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
			handler.GetPagamento(w, r, chi.URLParam(r, "id"))
		})
	})

	router.Get("/health", platformhealth.Handler(readiness))

	return router
}
