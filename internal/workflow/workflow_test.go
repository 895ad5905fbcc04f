package workflow

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	cataloghttp "github.com/EzzioMoreira/guia-opentelemetry/internal/catalog/api/http"
	catalogmemory "github.com/EzzioMoreira/guia-opentelemetry/internal/catalog/repository/memory"
	catalogservice "github.com/EzzioMoreira/guia-opentelemetry/internal/catalog/service"
	orderhttp "github.com/EzzioMoreira/guia-opentelemetry/internal/order/api/http"
	orderrest "github.com/EzzioMoreira/guia-opentelemetry/internal/order/client/rest"
	ordermemory "github.com/EzzioMoreira/guia-opentelemetry/internal/order/repository/memory"
	orderservice "github.com/EzzioMoreira/guia-opentelemetry/internal/order/service"
	paymenthttp "github.com/EzzioMoreira/guia-opentelemetry/internal/payment/api/http"
	paymentrest "github.com/EzzioMoreira/guia-opentelemetry/internal/payment/client/rest"
	paymentmemory "github.com/EzzioMoreira/guia-opentelemetry/internal/payment/repository/memory"
	paymentservice "github.com/EzzioMoreira/guia-opentelemetry/internal/payment/service"
	"github.com/EzzioMoreira/guia-opentelemetry/platform/observability"
)

// fixedAuthorizer всегда возвращает одно и то же решение
type fixedAuthorizer struct {
	approved bool
}

func (a fixedAuthorizer) Authorize(ctx context.Context, orderID int64) (paymentservice.Authorization, error) {
	return paymentservice.Authorization{
		Approved:      a.approved,
		TransactionID: "test-transaction",
	}, nil
}

type bookstore struct {
	catalogURL string
	orderURL   string
	paymentURL string
}

// startBookstore поднимает все три сервиса на in-memory хранилищах.
// У order и payment заранее выделенные адреса: они ссылаются друг на друга.
func startBookstore(t *testing.T, authorizer paymentservice.Authorizer) bookstore {
	t.Helper()

	logger := zap.NewNop()

	// Адрес сервиса заказов нужен платёжному сервису до его старта
	orderListener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	orderURL := "http://" + orderListener.Addr().String()

	// Каталог книг
	catalogTel := observability.Noop("catalog")
	catalogSvc := catalogservice.NewCatalogService(catalogmemory.NewMemoryRepository(), catalogTel, logger)
	catalogRouter := cataloghttp.NewRouter(cataloghttp.NewHandler(catalogSvc, logger), func() bool { return true }, catalogTel, logger)
	catalogSrv := httptest.NewServer(catalogRouter)
	t.Cleanup(catalogSrv.Close)

	// Сервис оплаты
	paymentTel := observability.Noop("payment")
	paymentSvc := paymentservice.NewPaymentService(
		paymentmemory.NewMemoryRepository(),
		paymentrest.NewOrderClient(orderURL, paymentTel),
		authorizer,
		paymentTel,
		logger,
	)
	paymentRouter := paymenthttp.NewRouter(paymenthttp.NewHandler(paymentSvc, logger), func() bool { return true }, paymentTel, logger)
	paymentSrv := httptest.NewServer(paymentRouter)
	t.Cleanup(paymentSrv.Close)

	// Сервис заказов
	orderTel := observability.Noop("order")
	orderSvc := orderservice.NewOrderService(
		ordermemory.NewMemoryRepository(),
		orderrest.NewCatalogClient(catalogSrv.URL, orderTel),
		orderrest.NewPaymentClient(paymentSrv.URL, orderTel),
		orderTel,
		logger,
	)
	orderRouter := orderhttp.NewRouter(orderhttp.NewHandler(orderSvc, logger), func() bool { return true }, orderTel, logger)
	orderSrv := &httptest.Server{
		Listener: orderListener,
		Config:   &http.Server{Handler: orderRouter},
	}
	orderSrv.Start()
	t.Cleanup(orderSrv.Close)

	return bookstore{
		catalogURL: catalogSrv.URL,
		orderURL:   orderURL,
		paymentURL: paymentSrv.URL,
	}
}

func postJSON(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return resp, payload
}

func getJSON(t *testing.T, url string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return resp, payload
}

func TestPurchaseFlow_ApprovedPayment(t *testing.T) {
	bs := startBookstore(t, fixedAuthorizer{approved: true})

	// Регистрируем книгу
	resp, book := postJSON(t, bs.catalogURL+"/livros/", `{"titulo": "Duna", "estoque": 3}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, float64(1), book["id"])

	// Оформляем заказ
	resp, order := postJSON(t, bs.orderURL+"/ordens/", `{"id_livro": 1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, float64(1), order["id"])
	assert.Equal(t, "Concluído", order["status"])

	// Остаток списан
	resp, book = getJSON(t, bs.catalogURL+"/livros/1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), book["estoque"])

	// Платёж сохранён как одобренный
	resp, payment := getJSON(t, bs.paymentURL+"/pagamentos/1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Aprovado", payment["status"])
	assert.Equal(t, float64(1), payment["id_ordem"])
}

func TestPurchaseFlow_DeclinedPayment(t *testing.T) {
	bs := startBookstore(t, fixedAuthorizer{approved: false})

	resp, _ := postJSON(t, bs.catalogURL+"/livros/", `{"titulo": "Duna", "estoque": 3}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, order := postJSON(t, bs.orderURL+"/ordens/", `{"id_livro": 1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Pagamento Recusado", order["status"])

	// Остаток не изменился
	resp, book := getJSON(t, bs.catalogURL+"/livros/1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(3), book["estoque"])
}

func TestPurchaseFlow_UnknownBook(t *testing.T) {
	bs := startBookstore(t, fixedAuthorizer{approved: true})

	resp, errBody := postJSON(t, bs.orderURL+"/ordens/", `{"id_livro": 999}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "book not found", errBody["error"])
}

func TestPurchaseFlow_PaymentForUnknownOrder(t *testing.T) {
	bs := startBookstore(t, fixedAuthorizer{approved: true})

	resp, errBody := postJSON(t, bs.paymentURL+"/pagamentos", `{"id_ordem": 999}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "order not found", errBody["error"])
}

func TestPurchaseFlow_StockExhaustion(t *testing.T) {
	bs := startBookstore(t, fixedAuthorizer{approved: true})

	resp, _ := postJSON(t, bs.catalogURL+"/livros/", `{"titulo": "Duna", "estoque": 1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Первый заказ выкупает последний экземпляр
	resp, order := postJSON(t, bs.orderURL+"/ordens/", `{"id_livro": 1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Concluído", order["status"])

	// Второй заказ той же книги отклоняется ещё до платежа
	resp, errBody := postJSON(t, bs.orderURL+"/ordens/", `{"id_livro": 1}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "book out of stock", errBody["error"])
}
