package main

import (
	"log"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/adapter/http/routes"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/infrastructure/config"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           FixxBuddy Order Core API
// @version         1.0
// @description     Cart, checkout pricing, order lifecycle, service OTP and quotations backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger, err := logging.NewLogger()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("[main] invalid configuration", zap.Error(err))
	}

	if err := routes.Run(cfg, logger); err != nil {
		logger.Fatal("[main] failed to start the application", zap.Error(err))
	}
}
