package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-list-manager/config"
	_ "task-list-manager/docs" // Swagger docs
	"task-list-manager/internal/bootstrap"
	"task-list-manager/internal/httpserver"
	"task-list-manager/internal/middleware"
	taskHTTP "task-list-manager/internal/task/delivery/http"
	"task-list-manager/internal/task/delivery/web"
	"task-list-manager/pkg/log"
)

// @title       Task List Manager API
// @description Create, edit, complete, delete and filter tasks with due dates.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		OutputPaths:  cfg.Logger.Output,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task List Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Task domain
	core, err := bootstrap.NewCore(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize task store: ", err)
		return
	}
	defer core.Close()

	taskHandler := taskHTTP.New(logger, core.UseCase)
	webHandler := web.New(logger, core.Board, web.Config{
		CookieName:         cfg.Session.CookieName,
		MaxEntries:         cfg.Session.MaxEntries,
		SessionTTL:         cfg.Session.TTL,
		NotificationExpiry: cfg.Notification.Duration,
	})

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg.RateLimit.RequestsPerMin),
		Ready:       core.Ready,
		TaskHandler: taskHandler,
		WebHandler:  webHandler,
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
