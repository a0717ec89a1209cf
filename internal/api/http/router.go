package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-analytics/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Dashboard *handlers.DashboardHandler
	Tickets   *handlers.TicketsHandler
	Charts    *handlers.ChartsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	api := app.Group("/api")
	api.Get("/dashboard", cfg.Dashboard.Dashboard)
	api.Get("/filters", cfg.Dashboard.FilterOptions)
	api.Get("/tickets", cfg.Tickets.ListTickets)
	api.Get("/export.csv", cfg.Tickets.ExportCSV)
	api.Get("/charts/:name", cfg.Charts.Chart)
}
