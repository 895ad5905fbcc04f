package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/order/service"
	"github.com/EzzioMoreira/guia-opentelemetry/platform/observability"
)

// PaymentClient реализует service.PaymentClient поверх REST API сервиса оплаты
type PaymentClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPaymentClient создаёт клиент сервиса оплаты.
// baseURL - адрес сервиса оплаты, например http://localhost:8082
func NewPaymentClient(baseURL string, tel *observability.Telemetry) *PaymentClient {
	return &PaymentClient{
		baseURL:    baseURL,
		httpClient: observability.NewHTTPClient(tel),
	}
}

type paymentRequest struct {
	IDOrdem int64 `json:"id_ordem"`
}

type paymentPayload struct {
	ID      int64  `json:"id"`
	IDOrdem int64  `json:"id_ordem"`
	Status  string `json:"status"`
}

// Process запрашивает обработку платежа для заказа.
// Статус "Aprovado" в ответе означает одобренный платёж, любой другой - отклонённый.
func (c *PaymentClient) Process(ctx context.Context, orderID int64) (service.PaymentResult, error) {
	body, err := json.Marshal(paymentRequest{IDOrdem: orderID})
	if err != nil {
		return service.PaymentResult{}, fmt.Errorf("marshal payment request: %w", err)
	}

	url := c.baseURL + "/pagamentos"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return service.PaymentResult{}, fmt.Errorf("create payment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return service.PaymentResult{}, fmt.Errorf("payment request: %w", err)
	}
	defer drain(resp.Body)

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return service.PaymentResult{}, fmt.Errorf("payment returned status %d", resp.StatusCode)
	}

	var payload paymentPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return service.PaymentResult{}, fmt.Errorf("decode payment response: %w", err)
	}

	return service.PaymentResult{
		ID:       payload.ID,
		Approved: payload.Status == "Aprovado",
	}, nil
}
