package dataset

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/support-analytics/internal/domain"
)

// timeLayouts are tried in order for date and timestamp columns.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02",
}

// Table is the cleaned, immutable dataset the rest of the pipeline
// works on.
type Table struct {
	Header  []string
	Tickets []domain.Ticket
}

// Clean normalizes a raw table: dates and timestamps parsed, the
// satisfaction rating coerced to numeric, and the resolution duration
// derived. Field values that fail to parse become nil; a negative or
// zero derived duration is reset to nil so one malformed timestamp pair
// cannot drag an average down. Pure aside from the summary log.
func Clean(raw *Raw, logger *zap.Logger) *Table {
	cols := newColumnIndex(raw.Header)

	var parseFailures, invalidDurations, outOfRangeRatings int

	tickets := make([]domain.Ticket, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		t := domain.Ticket{
			ID:       cols.value(row, domain.ColTicketID),
			Product:  cols.value(row, domain.ColProduct),
			Type:     cols.value(row, domain.ColTicketType),
			Status:   cols.value(row, domain.ColStatus),
			Priority: cols.value(row, domain.ColPriority),
			Channel:  cols.value(row, domain.ColChannel),
			Raw:      row,
		}

		t.PurchaseDate = parseTime(cols.value(row, domain.ColPurchaseDate), &parseFailures)
		t.FirstResponseAt = parseTime(cols.value(row, domain.ColFirstResponse), &parseFailures)
		t.ResolvedAt = parseTime(cols.value(row, domain.ColResolvedAt), &parseFailures)
		t.Satisfaction = parseRating(cols.value(row, domain.ColSatisfaction), &parseFailures, &outOfRangeRatings)

		if t.FirstResponseAt != nil && t.ResolvedAt != nil {
			hours := t.ResolvedAt.Sub(*t.FirstResponseAt).Hours()
			if hours > 0 {
				t.ResolutionHours = &hours
			} else {
				invalidDurations++
			}
		}

		tickets = append(tickets, t)
	}

	if parseFailures > 0 || invalidDurations > 0 || outOfRangeRatings > 0 {
		logger.Warn("data quality issues in source dataset",
			zap.Int("unparseable_fields", parseFailures),
			zap.Int("non_positive_durations", invalidDurations),
			zap.Int("out_of_range_ratings", outOfRangeRatings),
		)
	}

	return &Table{Header: raw.Header, Tickets: tickets}
}

// FilterOptions returns the distinct non-empty values of a categorical
// accessor, in first-seen order. The filter UI universes come from the
// data itself, never a hardcoded enumeration.
func (t *Table) FilterOptions(key func(*domain.Ticket) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range t.Tickets {
		v := key(&t.Tickets[i])
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// DateBounds returns the min and max purchase dates, or nil when no row
// carries one.
func (t *Table) DateBounds() (min, max *time.Time) {
	for i := range t.Tickets {
		d := t.Tickets[i].PurchaseDate
		if d == nil {
			continue
		}
		if min == nil || d.Before(*min) {
			min = d
		}
		if max == nil || d.After(*max) {
			max = d
		}
	}
	return min, max
}

type columnIndex map[string]int

func newColumnIndex(header []string) columnIndex {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	return idx
}

func (c columnIndex) value(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseTime(val string, failures *int) *time.Time {
	if val == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, val); err == nil {
			return &t
		}
	}
	*failures++
	return nil
}

func parseRating(val string, failures, outOfRange *int) *float64 {
	if val == "" {
		return nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		*failures++
		return nil
	}
	// Out-of-range ratings pass through unclamped; they are only
	// counted for the data quality log.
	if f < 1 || f > 5 {
		*outOfRange++
	}
	return &f
}
