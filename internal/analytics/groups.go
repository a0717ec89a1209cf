package analytics

import (
	"sort"

	"github.com/spec-kit/support-analytics/internal/domain"
)

// GroupMean is one group's aggregated mean plus the number of rows that
// contributed a valid value.
type GroupMean struct {
	Key   string
	Mean  float64
	Count int
}

// GroupCount is one group's row count.
type GroupCount struct {
	Key   string
	Count int
}

// ScatterPoint pairs a resolution duration with a satisfaction rating
// for the correlation view, tagged with the categorical columns shown
// on hover.
type ScatterPoint struct {
	ResolutionHours float64
	Satisfaction    float64
	Priority        string
	Status          string
	Channel         string
	Product         string
}

// Categorical accessors shared by the grouping helpers and the filter
// option universes.
func ByType(t *domain.Ticket) string     { return t.Type }
func ByPriority(t *domain.Ticket) string { return t.Priority }
func ByChannel(t *domain.Ticket) string  { return t.Channel }
func ByStatus(t *domain.Ticket) string   { return t.Status }
func ByProduct(t *domain.Ticket) string  { return t.Product }

// MeanSatisfactionBy averages non-null satisfaction ratings per group.
// Groups with no valid ratings are dropped. Sorted by mean descending.
func MeanSatisfactionBy(tickets []domain.Ticket, key func(*domain.Ticket) string) []GroupMean {
	return meanBy(tickets, key, func(t *domain.Ticket) *float64 { return t.Satisfaction }, false)
}

// MeanResolutionBy averages non-null resolution durations per group.
// Groups with no valid durations are dropped. Sorted by mean ascending.
func MeanResolutionBy(tickets []domain.Ticket, key func(*domain.Ticket) string) []GroupMean {
	return meanBy(tickets, key, func(t *domain.Ticket) *float64 { return t.ResolutionHours }, true)
}

// VolumeBy counts rows per group, null-field rows included. Sorted by
// count descending.
func VolumeBy(tickets []domain.Ticket, key func(*domain.Ticket) string) []GroupCount {
	counts := make(map[string]int)
	var order []string
	for i := range tickets {
		k := key(&tickets[i])
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	out := make([]GroupCount, 0, len(order))
	for _, k := range order {
		out = append(out, GroupCount{Key: k, Count: counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// ResolutionSatisfactionPairs returns the rows where both the derived
// duration and the rating are present.
func ResolutionSatisfactionPairs(tickets []domain.Ticket) []ScatterPoint {
	var out []ScatterPoint
	for i := range tickets {
		t := &tickets[i]
		if t.ResolutionHours == nil || t.Satisfaction == nil {
			continue
		}
		out = append(out, ScatterPoint{
			ResolutionHours: *t.ResolutionHours,
			Satisfaction:    *t.Satisfaction,
			Priority:        t.Priority,
			Status:          t.Status,
			Channel:         t.Channel,
			Product:         t.Product,
		})
	}
	return out
}

func meanBy(tickets []domain.Ticket, key func(*domain.Ticket) string, value func(*domain.Ticket) *float64, ascending bool) []GroupMean {
	type acc struct {
		sum   float64
		count int
	}
	groups := make(map[string]*acc)
	var order []string

	for i := range tickets {
		t := &tickets[i]
		v := value(t)
		if v == nil {
			continue
		}
		k := key(t)
		g, ok := groups[k]
		if !ok {
			g = &acc{}
			groups[k] = g
			order = append(order, k)
		}
		g.sum += *v
		g.count++
	}

	out := make([]GroupMean, 0, len(order))
	for _, k := range order {
		g := groups[k]
		out = append(out, GroupMean{Key: k, Mean: g.sum / float64(g.count), Count: g.count})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Mean != out[j].Mean {
			if ascending {
				return out[i].Mean < out[j].Mean
			}
			return out[i].Mean > out[j].Mean
		}
		return out[i].Key < out[j].Key
	})
	return out
}
