package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	t.Run("ok without readiness func", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Handler(nil)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("ok when ready", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Handler(func() bool { return true })(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("503 when not ready", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Handler(func() bool { return false })(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"not ready"}`, rec.Body.String())
	})
}
