package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-analytics/internal/charts"
	"github.com/spec-kit/support-analytics/internal/service"
	apperrors "github.com/spec-kit/support-analytics/pkg/util"
)

// ChartsHandler renders dashboard charts server-side as PNG.
type ChartsHandler struct {
	service *service.DashboardService
}

// NewChartsHandler constructs handler.
func NewChartsHandler(dashboardService *service.DashboardService) *ChartsHandler {
	return &ChartsHandler{service: dashboardService}
}

// Chart GET /api/charts/:name. The name may carry a .png suffix.
func (h *ChartsHandler) Chart(c *fiber.Ctx) error {
	name := strings.TrimSuffix(c.Params("name"), ".png")

	spec, err := parseFilterSpec(c)
	if err != nil {
		return err
	}
	view := h.service.ComputeView(spec)

	png, err := charts.Render(name, view)
	if err != nil {
		switch {
		case errors.Is(err, charts.ErrUnknownChart):
			return apperrors.NewNotFound("chart", map[string]any{"name": name, "known": charts.Names()})
		case errors.Is(err, charts.ErrNoData):
			// Empty filtered set is valid; nothing to draw.
			return c.SendStatus(fiber.StatusNoContent)
		default:
			return apperrors.NewInternalError(err)
		}
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
