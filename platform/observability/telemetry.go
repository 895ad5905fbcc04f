package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	otellog "go.opentelemetry.io/otel/log"
	lognoop "go.opentelemetry.io/otel/log/noop"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap/zapcore"
)

// Telemetry держит провайдеры трейсов, метрик и логов одного сервиса.
// Передаётся явно в middleware, клиенты и app — глобальное состояние
// otel.SetTracerProvider/SetMeterProvider здесь не используется,
// чтобы каждый компонент получал телеметрию через конструктор.
type Telemetry struct {
	serviceName string
	enabled     bool

	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	loggerProvider otellog.LoggerProvider
	propagator     propagation.TextMapPropagator

	shutdownFns []func(context.Context) error
}

// Setup создаёт Telemetry: TracerProvider, MeterProvider, LoggerProvider и propagator.
// Если cfg.Enabled == false — возвращает noop-вариант (спаны/метрики/логи никуда не уходят).
// Иначе создаёт OTLP gRPC exporters, BatchSpanProcessor, ParentBased(TraceIDRatioBased)
// sampler, periodic metric reader и batch log processor.
// Shutdown нужно вызвать при остановке сервиса (например через platform/shutdown).
func Setup(ctx context.Context, cfg Config) (*Telemetry, error) {
	if !cfg.Enabled {
		return Noop(cfg.ServiceName), nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", cfg.ServiceName),
			attribute.String("deployment.environment", cfg.DeploymentEnvironment),
		),
		resource.WithProcessRuntimeDescription(),
	)
	if err != nil {
		return nil, fmt.Errorf("observability resource: %w", err)
	}
	if cfg.ServiceVersion != "" {
		res, err = resource.Merge(res, resource.NewWithAttributes("",
			attribute.String("service.version", cfg.ServiceVersion),
		))
		if err != nil {
			return nil, fmt.Errorf("merge resource attributes: %w", err)
		}
	}

	t := &Telemetry{
		serviceName: cfg.ServiceName,
		enabled:     true,
		propagator: propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	}

	// Trace exporter
	traceExp, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("otlp trace exporter: %w", err)
	}

	sampler := sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplingRatio))
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(traceExp),
		sdktrace.WithSampler(sampler),
	)
	t.tracerProvider = tp
	t.shutdownFns = append(t.shutdownFns, tp.Shutdown)

	// MeterProvider с OTLP metrics exporter
	metricExp, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(cfg.OTLPEndpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		t.Shutdown(context.Background())
		return nil, fmt.Errorf("otlp metric exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp, sdkmetric.WithInterval(10*time.Second))),
	)
	t.meterProvider = mp
	t.shutdownFns = append(t.shutdownFns, mp.Shutdown)

	// LoggerProvider с OTLP log exporter: структурированные логи zap
	// уезжают в тот же collector через otelzap-мост (см. ZapCore)
	logExp, err := otlploggrpc.New(ctx,
		otlploggrpc.WithEndpoint(cfg.OTLPEndpoint),
		otlploggrpc.WithInsecure(),
	)
	if err != nil {
		t.Shutdown(context.Background())
		return nil, fmt.Errorf("otlp log exporter: %w", err)
	}
	lp := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExp)),
	)
	t.loggerProvider = lp
	t.shutdownFns = append(t.shutdownFns, lp.Shutdown)

	return t, nil
}

// Noop возвращает Telemetry с noop-провайдерами.
// Используется при OTEL_ENABLED=false и в тестах.
func Noop(serviceName string) *Telemetry {
	return &Telemetry{
		serviceName:    serviceName,
		tracerProvider: tracenoop.NewTracerProvider(),
		meterProvider:  metricnoop.NewMeterProvider(),
		loggerProvider: lognoop.NewLoggerProvider(),
		propagator: propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	}
}

// Tracer возвращает tracer сервиса
func (t *Telemetry) Tracer() trace.Tracer {
	return t.tracerProvider.Tracer(t.serviceName)
}

// Meter возвращает meter сервиса
func (t *Telemetry) Meter() metric.Meter {
	return t.meterProvider.Meter(t.serviceName)
}

// Propagator возвращает propagator для inject/extract trace context
func (t *Telemetry) Propagator() propagation.TextMapPropagator {
	return t.propagator
}

// ZapCore возвращает zapcore.Core, отправляющий логи в OTLP collector,
// или nil, если экспорт выключен. Подключается через zapcore.NewTee
// к основному core из platform/logging.
func (t *Telemetry) ZapCore() zapcore.Core {
	if !t.enabled {
		return nil
	}
	return otelzap.NewCore(t.serviceName, otelzap.WithLoggerProvider(t.loggerProvider))
}

// Shutdown останавливает все провайдеры, флашит буферизованные спаны/метрики/логи
func (t *Telemetry) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	for _, fn := range t.shutdownFns {
		if err := fn(ctx); err != nil {
			return err
		}
	}
	return nil
}
