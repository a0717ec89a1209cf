package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-analytics/internal/analytics"
	"github.com/spec-kit/support-analytics/internal/api/dto"
	"github.com/spec-kit/support-analytics/internal/service"
)

// DashboardHandler serves the computed dashboard view.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: dashboardService}
}

// Dashboard GET /api/dashboard.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	spec, err := parseFilterSpec(c)
	if err != nil {
		return err
	}
	view := h.service.ComputeView(spec)
	return c.JSON(fiber.Map{"data": dashboardResponse(view)})
}

// FilterOptions GET /api/filters.
func (h *DashboardHandler) FilterOptions(c *fiber.Ctx) error {
	opts := h.service.FilterOptions()
	resp := dto.FilterOptionsResponse{
		Priorities: opts.Priorities,
		Channels:   opts.Channels,
		Statuses:   opts.Statuses,
		Products:   opts.Products,
	}
	if opts.DateMin != nil {
		s := opts.DateMin.Format(dateLayout)
		resp.DateMin = &s
	}
	if opts.DateMax != nil {
		s := opts.DateMax.Format(dateLayout)
		resp.DateMax = &s
	}
	return c.JSON(fiber.Map{"data": resp})
}

func dashboardResponse(view service.ViewModel) dto.DashboardResponse {
	return dto.DashboardResponse{
		TotalRows:    view.TotalRows,
		FilteredRows: view.FilteredRows,
		KPIs: dto.KPIResponse{
			TotalTickets:       view.KPIs.TotalTickets,
			AvgSatisfaction:    view.KPIs.AvgSatisfaction,
			AvgResolutionHours: view.KPIs.AvgResolutionHours,
			OpenTickets:        view.KPIs.OpenTickets,
			ClosedTickets:      view.KPIs.ClosedTickets,
		},
		Charts: dto.DashboardCharts{
			SatisfactionByType:     groupMeans(view.SatisfactionByType),
			SatisfactionByPriority: groupMeans(view.SatisfactionByPriority),
			SatisfactionByChannel:  groupMeans(view.SatisfactionByChannel),
			ResolutionByPriority:   groupMeans(view.ResolutionByPriority),
			VolumeByChannel:        groupCounts(view.VolumeByChannel),
			VolumeByStatus:         groupCounts(view.VolumeByStatus),
			ResolutionSatisfaction: scatterPoints(view.Scatter),
		},
	}
}

func groupMeans(groups []analytics.GroupMean) []dto.GroupMeanResponse {
	out := make([]dto.GroupMeanResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.GroupMeanResponse{Key: g.Key, Mean: g.Mean, Count: g.Count})
	}
	return out
}

func groupCounts(groups []analytics.GroupCount) []dto.GroupCountResponse {
	out := make([]dto.GroupCountResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.GroupCountResponse{Key: g.Key, Count: g.Count})
	}
	return out
}

func scatterPoints(points []analytics.ScatterPoint) []dto.ScatterPointResponse {
	out := make([]dto.ScatterPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, dto.ScatterPointResponse{
			ResolutionHours: p.ResolutionHours,
			Satisfaction:    p.Satisfaction,
			Priority:        p.Priority,
			Status:          p.Status,
			Channel:         p.Channel,
			Product:         p.Product,
		})
	}
	return out
}
