// Package main запускает HTTP-сервис экспорта данных мероприятий
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"event-management-service/internal/cache"
	"event-management-service/internal/config"
	httpapi "event-management-service/internal/http"
	"event-management-service/internal/repository"
	"event-management-service/internal/service"
)

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Конфигурация из ENV (и .env, если он есть)
	cfg, err := config.Load(os.Getenv("ENV_FILE"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	// Подключение к БД
	db, err := repository.NewPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("failed to init postgres: %v", err)
	}
	defer db.Pool.Close()

	// 1. Инициализация репозиториев
	eventDataRepo := repository.NewEventDataRepo(db)
	dashboardRepo := repository.NewDashboardRepo(db)

	// 2. Инициализация Менеджера Транзакций
	txManager := repository.NewTransactionManager(db)

	// 3. Кэш дашборда живёт столько же, сколько процесс
	dashboardCache := cache.NewTTL(nil)

	// 4. Инициализация сервисов
	exportService := service.NewExportService(
		service.NewDataSources(eventDataRepo),
		cfg.ExportFailurePolicy,
		cfg.ExportMaxParallel,
		cfg.ExportLocation,
		logger,
	)
	dashboardService := service.NewDashboardService(dashboardRepo, txManager, dashboardCache, cfg.DashboardCacheTTL, logger)

	// 5. Инициализация HTTP-обработчика
	handler := httpapi.NewHandler(exportService, dashboardService, cfg.CORSAllowedOrigins, logger)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.Router(),
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server",
			slog.String("addr", server.Addr),
			slog.String("export_failure_policy", string(cfg.ExportFailurePolicy)),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
