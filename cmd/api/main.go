package main

import (
	"context"

	"damage_report/internal/adapter/http/routes"
	"damage_report/internal/config"
	"damage_report/internal/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Damage Report API
// @version         1.0
// @description     Vehicle damage assessments with a pay-to-unlock report, part search and social content tools.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := routes.Run(context.Background(), cfg); err != nil {
		zap.L().Fatal("[main] server stopped", zap.Error(err))
	}
}
