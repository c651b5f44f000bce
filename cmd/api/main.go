package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"library-management-system/config"
	_ "library-management-system/docs" // Swagger docs
	"library-management-system/internal/httpserver"
	"library-management-system/internal/middleware"
	"library-management-system/pkg/log"
	"library-management-system/pkg/postgres"
)

// @title       Library Management System API
// @description REST API for managing a library catalog, its members, and the borrow/return loan lifecycle.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Library Management System...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres (connects, pings, migrates)
	db, err := postgres.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		return
	}
	defer db.Close()

	logger.Infof(ctx, "Connected to Postgres at %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.Database)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		LoanPeriod:  cfg.Loan.Period(),
		Middleware: middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RateLimitRPS:     cfg.RateLimit.RPS,
			RateLimitBurst:   cfg.RateLimit.Burst,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
