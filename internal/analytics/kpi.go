package analytics

import (
	"github.com/spec-kit/support-analytics/internal/domain"
)

// StatusPartition is the explicit mapping that decides the open-ticket
// KPI: a status is open unless it appears in the closed terminus set.
type StatusPartition struct {
	closed map[string]struct{}
}

// NewStatusPartition builds a partition from the configured closed
// statuses.
func NewStatusPartition(closedStatuses []string) StatusPartition {
	closed := make(map[string]struct{}, len(closedStatuses))
	for _, s := range closedStatuses {
		closed[s] = struct{}{}
	}
	return StatusPartition{closed: closed}
}

// IsClosed reports whether a status falls in the closed set.
func (p StatusPartition) IsClosed(status string) bool {
	_, ok := p.closed[status]
	return ok
}

// KPISet holds the scalar summary statistics for a filtered ticket set.
// Averages are nil when no contributing values exist; an empty set is
// never a fault.
type KPISet struct {
	TotalTickets       int
	AvgSatisfaction    *float64
	AvgResolutionHours *float64
	OpenTickets        int
	ClosedTickets      int
}

// ComputeKPIs derives the KPI scalars from the filtered set only, so
// KPI values always agree with the charts and table built from the same
// rows.
func ComputeKPIs(tickets []domain.Ticket, partition StatusPartition) KPISet {
	kpis := KPISet{TotalTickets: len(tickets)}

	var satSum float64
	var satCount int
	var resSum float64
	var resCount int

	for i := range tickets {
		t := &tickets[i]
		if t.Satisfaction != nil {
			satSum += *t.Satisfaction
			satCount++
		}
		if t.ResolutionHours != nil {
			resSum += *t.ResolutionHours
			resCount++
		}
		if partition.IsClosed(t.Status) {
			kpis.ClosedTickets++
		} else {
			kpis.OpenTickets++
		}
	}

	if satCount > 0 {
		avg := satSum / float64(satCount)
		kpis.AvgSatisfaction = &avg
	}
	if resCount > 0 {
		avg := resSum / float64(resCount)
		kpis.AvgResolutionHours = &avg
	}
	return kpis
}
