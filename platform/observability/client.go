package observability

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// NewHTTPClient возвращает http.Client с трассирующим transport.
// Используется REST-клиентами для вызовов между сервисами.
func NewHTTPClient(tel *Telemetry) *http.Client {
	return &http.Client{
		Transport: NewTransport(tel, nil),
	}
}

// NewTransport оборачивает base (nil = http.DefaultTransport) в трассирующий RoundTripper
func NewTransport(tel *Telemetry, base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &tracingTransport{base: base, tel: tel}
}

type tracingTransport struct {
	base http.RoundTripper
	tel  *Telemetry
}

// RoundTrip выполняет запрос внутри client span и прокидывает traceparent
func (t *tracingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	tracer := t.tel.Tracer()
	prop := t.tel.Propagator()

	ctx, span := tracer.Start(req.Context(), "HTTP "+req.Method+" "+req.URL.Path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("server.address", req.URL.Host),
		),
	)
	defer span.End()

	req = req.Clone(ctx)
	prop.Inject(ctx, httpHeaderCarrier{req.Header})

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= 400 {
		span.SetStatus(codes.Error, resp.Status)
	}
	return resp, nil
}
