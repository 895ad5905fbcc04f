package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/app"
	"github.com/EzzioMoreira/guia-opentelemetry/internal/payment/config"
)

func main() {
	// .env опционален: в docker переменные приходят из окружения
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.Log()

	application, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("App terminated with error: %v", err)
	}
}
