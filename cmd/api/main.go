package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/support-analytics/internal/analytics"
	httptransport "github.com/spec-kit/support-analytics/internal/api/http"
	"github.com/spec-kit/support-analytics/internal/api/http/handlers"
	"github.com/spec-kit/support-analytics/internal/config"
	"github.com/spec-kit/support-analytics/internal/dataset"
	"github.com/spec-kit/support-analytics/internal/observability"
	"github.com/spec-kit/support-analytics/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// The dataset is static for the session: load and clean once, fail
	// fast if the file is missing. No retry, there is nothing to wait
	// for.
	store := dataset.NewStore(logger)
	table, err := store.Table(cfg.Data.CSVPath)
	if err != nil {
		logger.Fatal("failed to load dataset", zap.String("path", cfg.Data.CSVPath), zap.Error(err))
	}

	partition := analytics.NewStatusPartition(cfg.Analytics.ClosedStatuses)
	dashboardService := service.NewDashboardService(service.Dependencies{
		Table:     table,
		Partition: partition,
		Logger:    logger,
	})

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, dashboardService, metrics)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	ticketsHandler := handlers.NewTicketsHandler(dashboardService)
	chartsHandler := handlers.NewChartsHandler(dashboardService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    healthHandler,
		Dashboard: dashboardHandler,
		Tickets:   ticketsHandler,
		Charts:    chartsHandler,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
