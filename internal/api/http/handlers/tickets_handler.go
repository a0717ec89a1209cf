package handlers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-analytics/internal/api/dto"
	"github.com/spec-kit/support-analytics/internal/dataset"
	"github.com/spec-kit/support-analytics/internal/domain"
	"github.com/spec-kit/support-analytics/internal/service"
	apperrors "github.com/spec-kit/support-analytics/pkg/util"
)

// TicketsHandler serves the data explorer table and the CSV export.
type TicketsHandler struct {
	service *service.DashboardService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(dashboardService *service.DashboardService) *TicketsHandler {
	return &TicketsHandler{service: dashboardService}
}

// ListTickets GET /api/tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	spec, err := parseFilterSpec(c)
	if err != nil {
		return err
	}
	tickets := h.service.FilteredTickets(spec)
	items := make([]dto.TicketRowResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketRow(&tickets[i]))
	}
	return c.JSON(fiber.Map{
		"data": items,
		"meta": fiber.Map{
			"total_rows":    h.service.RowCount(),
			"filtered_rows": len(items),
		},
	})
}

// ExportCSV GET /api/export.csv.
func (h *TicketsHandler) ExportCSV(c *fiber.Ctx) error {
	spec, err := parseFilterSpec(c)
	if err != nil {
		return err
	}
	tickets := h.service.FilteredTickets(spec)

	var buf bytes.Buffer
	if err := dataset.WriteCSV(&buf, h.service.Header(), tickets); err != nil {
		return apperrors.NewInternalError(err)
	}

	filename := fmt.Sprintf("customer_support_tickets_filtered_%s.csv", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}

func ticketRow(t *domain.Ticket) dto.TicketRowResponse {
	return dto.TicketRowResponse{
		TicketID:        t.ID,
		Product:         t.Product,
		PurchaseDate:    t.PurchaseDate,
		Type:            t.Type,
		Priority:        t.Priority,
		Status:          t.Status,
		Channel:         t.Channel,
		Satisfaction:    t.Satisfaction,
		ResolutionHours: t.ResolutionHours,
	}
}
