package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-analytics/internal/dataset"
	apperrors "github.com/spec-kit/support-analytics/pkg/util"
)

const dateLayout = "2006-01-02"

// parseFilterSpec reads the shared filter query parameters. Unset
// dimensions stay zero-valued and match everything.
func parseFilterSpec(c *fiber.Ctx) (dataset.FilterSpec, error) {
	spec := dataset.FilterSpec{}

	if raw := c.Query("date_from"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return spec, apperrors.NewValidationError("date_from must be YYYY-MM-DD", map[string]any{"value": raw})
		}
		spec.DateFrom = &t
	}
	if raw := c.Query("date_to"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return spec, apperrors.NewValidationError("date_to must be YYYY-MM-DD", map[string]any{"value": raw})
		}
		spec.DateTo = &t
	}
	if spec.DateFrom != nil && spec.DateTo != nil && spec.DateTo.Before(*spec.DateFrom) {
		return spec, apperrors.NewValidationError("date_to must not precede date_from", nil)
	}

	spec.Priorities = splitValues(c.Query("priority"))
	spec.Channels = splitValues(c.Query("channel"))
	spec.Statuses = splitValues(c.Query("status"))
	spec.Products = splitValues(c.Query("product"))
	return spec, nil
}

func splitValues(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
