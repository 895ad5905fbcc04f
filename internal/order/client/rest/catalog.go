package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/order/service"
	"github.com/EzzioMoreira/guia-opentelemetry/platform/observability"
)

// CatalogClient реализует service.BookClient поверх REST API каталога книг.
// Trace context уезжает в исходящие запросы через tracing transport.
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCatalogClient создаёт клиент каталога.
// baseURL - адрес сервиса каталога, например http://localhost:8080
func NewCatalogClient(baseURL string, tel *observability.Telemetry) *CatalogClient {
	return &CatalogClient{
		baseURL:    baseURL,
		httpClient: observability.NewHTTPClient(tel),
	}
}

type bookPayload struct {
	ID      int64  `json:"id"`
	Titulo  string `json:"titulo"`
	Estoque int32  `json:"estoque"`
}

// GetBook получает книгу по ID из каталога
func (c *CatalogClient) GetBook(ctx context.Context, id int64) (service.Book, error) {
	url := fmt.Sprintf("%s/livros/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return service.Book{}, fmt.Errorf("create catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return service.Book{}, fmt.Errorf("catalog request: %w", err)
	}
	defer drain(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return service.Book{}, service.ErrBookNotFound
	default:
		return service.Book{}, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var payload bookPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return service.Book{}, fmt.Errorf("decode catalog response: %w", err)
	}
	return service.Book{
		ID:    payload.ID,
		Title: payload.Titulo,
		Stock: payload.Estoque,
	}, nil
}

// WriteDownStock списывает один экземпляр книги в каталоге
func (c *CatalogClient) WriteDownStock(ctx context.Context, id int64) error {
	url := fmt.Sprintf("%s/livros/%d/baixa-estoque", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("create write-down request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("write-down request: %w", err)
	}
	defer drain(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog write-down returned status %d", resp.StatusCode)
	}
	return nil
}

// drain вычитывает и закрывает body, чтобы соединение вернулось в пул
func drain(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
