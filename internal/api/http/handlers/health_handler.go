package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-analytics/internal/observability"
	"github.com/spec-kit/support-analytics/internal/service"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	dashboard   *service.DashboardService
	metrics     *observability.Metrics
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, dashboard *service.DashboardService, metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, dashboard: dashboard, metrics: metrics}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness: the dataset must be loaded and non-empty.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	rows := 0
	if h.dashboard != nil {
		rows = h.dashboard.RowCount()
	}

	if rows > 0 {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": fiber.Map{"dataset": "ok", "rows": rows},
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "DATA_UNAVAILABLE",
			"message": "dataset not loaded or empty",
			"details": fiber.Map{"rows": rows},
		},
	})
}

// Metrics exposes the in-memory request and error counters.
func (h *HealthHandler) Metrics(c *fiber.Ctx) error {
	requests, errs := h.metrics.Snapshot()
	return c.JSON(fiber.Map{
		"requests": requests,
		"errors":   errs,
	})
}
