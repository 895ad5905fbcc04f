package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	httpapi "github.com/EzzioMoreira/guia-opentelemetry/internal/payment/api/http"
	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/client/rest"
	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/config"
	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/gateway"
	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/migrations"
	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/repository/postgres"
	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/service"
	"github.com/EzzioMoreira/guia-opentelemetry/platform/logging"
	"github.com/EzzioMoreira/guia-opentelemetry/platform/observability"
	"github.com/EzzioMoreira/guia-opentelemetry/platform/shutdown"
)

// App представляет приложение сервиса оплаты со всеми зависимостями
type App struct {
	cfg         config.Config
	logger      *zap.Logger
	telemetry   *observability.Telemetry
	pool        *pgxpool.Pool
	httpServer  *http.Server
	shutdownMgr *shutdown.Manager
}

// New создаёт приложение: телеметрия → логгер → БД → миграции → шлюз → сервис → HTTP
func New(ctx context.Context, cfg config.Config) (*App, error) {
	tel, err := observability.Setup(ctx, observability.Config{
		Enabled:               cfg.OTelEnabled,
		OTLPEndpoint:          cfg.OTelEndpoint,
		SamplingRatio:         cfg.OTelSamplingRatio,
		ServiceName:           "payment",
		DeploymentEnvironment: string(cfg.AppEnv),
	})
	if err != nil {
		return nil, fmt.Errorf("setup telemetry: %w", err)
	}

	logger, err := logging.New(logging.Config{
		ServiceName: "payment",
		Env:         string(cfg.AppEnv),
		ExtraCore:   tel.ZapCore(),
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if err := runMigrations(ctx, cfg.PostgresDSN); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations applied")

	repo := postgres.NewRepository(pool)
	orderClient := rest.NewOrderClient(cfg.OrderURL, tel)
	paymentService := service.NewPaymentService(repo, orderClient, gateway.NewRandom(), tel, logger)
	handler := httpapi.NewHandler(paymentService, logger)

	readiness := func() bool {
		return pool.Ping(context.Background()) == nil
	}
	router := httpapi.NewRouter(handler, readiness, tel, logger)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	mgr := shutdown.New(cfg.ShutdownTimeout, logger)
	mgr.Add("http-server", shutdown.ShutdownHTTPServer(httpServer))
	mgr.Add("postgres-pool", shutdown.ClosePool(pool))
	mgr.Add("telemetry", tel.Shutdown)

	return &App{
		cfg:         cfg,
		logger:      logger,
		telemetry:   tel,
		pool:        pool,
		httpServer:  httpServer,
		shutdownMgr: mgr,
	}, nil
}

// Run запускает HTTP сервер и блокируется до сигнала завершения
func (a *App) Run() error {
	errChan := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server", zap.String("addr", a.cfg.HTTPAddr))
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	done := make(chan struct{})
	go func() {
		a.shutdownMgr.Wait()
		close(done)
	}()

	select {
	case err := <-errChan:
		// Сервер упал без сигнала: закрываем пул и флашим телеметрию явно
		a.shutdownMgr.Shutdown()
		logging.Sync(a.logger)
		return fmt.Errorf("http server: %w", err)
	case <-done:
		logging.Sync(a.logger)
		return nil
	}
}

func runMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open sql connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	// Своя таблица версий: локально все сервисы смотрят в одну БД
	goose.SetTableName("goose_db_version_payment")
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
