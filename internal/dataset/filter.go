package dataset

import (
	"time"

	"github.com/spec-kit/support-analytics/internal/domain"
)

// FilterSpec captures the user-selected predicates. A nil date bound or
// empty value list means "match everything" for that dimension.
// Dimensions combine with AND; values within one dimension with OR.
type FilterSpec struct {
	DateFrom   *time.Time
	DateTo     *time.Time
	Priorities []string
	Channels   []string
	Statuses   []string
	Products   []string
}

// Matches reports whether a single ticket satisfies every active
// predicate.
func (s FilterSpec) Matches(t *domain.Ticket) bool {
	if s.DateFrom != nil || s.DateTo != nil {
		if t.PurchaseDate == nil {
			return false
		}
		if s.DateFrom != nil && t.PurchaseDate.Before(*s.DateFrom) {
			return false
		}
		if s.DateTo != nil && t.PurchaseDate.After(*s.DateTo) {
			return false
		}
	}
	if !matchesSet(s.Priorities, t.Priority) {
		return false
	}
	if !matchesSet(s.Channels, t.Channel) {
		return false
	}
	if !matchesSet(s.Statuses, t.Status) {
		return false
	}
	if !matchesSet(s.Products, t.Product) {
		return false
	}
	return true
}

// Apply returns the subset of the table matching every active
// predicate. An empty
// result is valid; callers must handle zero rows.
func (s FilterSpec) Apply(tbl *Table) []domain.Ticket {
	out := make([]domain.Ticket, 0, len(tbl.Tickets))
	for i := range tbl.Tickets {
		if s.Matches(&tbl.Tickets[i]) {
			out = append(out, tbl.Tickets[i])
		}
	}
	return out
}

func matchesSet(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}
