package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/service"
	"github.com/EzzioMoreira/guia-opentelemetry/platform/observability"
)

// OrderClient реализует service.OrderClient поверх REST API сервиса заказов
type OrderClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewOrderClient создаёт клиент сервиса заказов.
// baseURL - адрес сервиса заказов, например http://localhost:8081
func NewOrderClient(baseURL string, tel *observability.Telemetry) *OrderClient {
	return &OrderClient{
		baseURL:    baseURL,
		httpClient: observability.NewHTTPClient(tel),
	}
}

// OrderExists проверяет существование заказа через GET /ordens/{id}
func (c *OrderClient) OrderExists(ctx context.Context, orderID int64) error {
	url := fmt.Sprintf("%s/ordens/%d", c.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create order request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("order request: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return service.ErrOrderNotFound
	default:
		return fmt.Errorf("order service returned status %d", resp.StatusCode)
	}
}
