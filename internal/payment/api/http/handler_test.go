package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/repository/memory"
	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/service"
	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/service/mocks"
	"github.com/EzzioMoreira/guia-opentelemetry/platform/observability"
)

type testServer struct {
	srv        *httptest.Server
	orders     *mocks.OrderClient
	authorizer *mocks.Authorizer
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	tel := observability.Noop("payment")
	logger := zap.NewNop()
	orders := mocks.NewOrderClient(t)
	authorizer := mocks.NewAuthorizer(t)
	svc := service.NewPaymentService(memory.NewMemoryRepository(), orders, authorizer, tel, logger)
	router := NewRouter(NewHandler(svc, logger), func() bool { return true }, tel, logger)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return testServer{srv: srv, orders: orders, authorizer: authorizer}
}

func TestPostPagamentos(t *testing.T) {
	t.Run("creates approved payment", func(t *testing.T) {
		ts := newTestServer(t)
		ts.orders.On("OrderExists", mock.Anything, int64(1)).Return(nil)
		ts.authorizer.On("Authorize", mock.Anything, int64(1)).
			Return(service.Authorization{Approved: true, TransactionID: "tx-1"}, nil)

		resp, err := http.Post(ts.srv.URL+"/pagamentos", "application/json",
			strings.NewReader(`{"id_ordem": 1}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var payment PaymentResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payment))
		assert.Equal(t, int64(1), payment.ID)
		assert.Equal(t, int64(1), payment.IDOrdem)
		assert.Equal(t, "Aprovado", payment.Status)
	})

	t.Run("creates declined payment", func(t *testing.T) {
		ts := newTestServer(t)
		ts.orders.On("OrderExists", mock.Anything, int64(1)).Return(nil)
		ts.authorizer.On("Authorize", mock.Anything, int64(1)).
			Return(service.Authorization{Approved: false, TransactionID: "tx-2"}, nil)

		resp, err := http.Post(ts.srv.URL+"/pagamentos", "application/json",
			strings.NewReader(`{"id_ordem": 1}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var payment PaymentResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payment))
		assert.Equal(t, "Recusado", payment.Status)
	})

	t.Run("404 for missing order", func(t *testing.T) {
		ts := newTestServer(t)
		ts.orders.On("OrderExists", mock.Anything, int64(999)).Return(service.ErrOrderNotFound)

		resp, err := http.Post(ts.srv.URL+"/pagamentos", "application/json",
			strings.NewReader(`{"id_ordem": 999}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var errResp errorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
		assert.Equal(t, "order not found", errResp.Error)
	})

	t.Run("400 for missing id_ordem", func(t *testing.T) {
		ts := newTestServer(t)

		resp, err := http.Post(ts.srv.URL+"/pagamentos", "application/json",
			strings.NewReader(`{}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("400 for invalid JSON", func(t *testing.T) {
		ts := newTestServer(t)

		resp, err := http.Post(ts.srv.URL+"/pagamentos", "application/json",
			strings.NewReader(`{"id_ordem": `))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetPagamento(t *testing.T) {
	t.Run("returns stored payment", func(t *testing.T) {
		ts := newTestServer(t)
		ts.orders.On("OrderExists", mock.Anything, int64(1)).Return(nil)
		ts.authorizer.On("Authorize", mock.Anything, int64(1)).
			Return(service.Authorization{Approved: true, TransactionID: "tx-1"}, nil)

		resp, err := http.Post(ts.srv.URL+"/pagamentos", "application/json",
			strings.NewReader(`{"id_ordem": 1}`))
		require.NoError(t, err)
		resp.Body.Close()

		getResp, err := http.Get(ts.srv.URL + "/pagamentos/1")
		require.NoError(t, err)
		defer getResp.Body.Close()
		require.Equal(t, http.StatusOK, getResp.StatusCode)

		var payment PaymentResponse
		require.NoError(t, json.NewDecoder(getResp.Body).Decode(&payment))
		assert.Equal(t, "Aprovado", payment.Status)
	})

	t.Run("404 for missing payment", func(t *testing.T) {
		ts := newTestServer(t)

		resp, err := http.Get(ts.srv.URL + "/pagamentos/999")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var errResp errorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
		assert.Equal(t, "payment not found", errResp.Error)
	})

	t.Run("400 for non-numeric id", func(t *testing.T) {
		ts := newTestServer(t)

		resp, err := http.Get(ts.srv.URL + "/pagamentos/abc")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
