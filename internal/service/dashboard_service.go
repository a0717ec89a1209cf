package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/support-analytics/internal/analytics"
	"github.com/spec-kit/support-analytics/internal/dataset"
	"github.com/spec-kit/support-analytics/internal/domain"
)

// DashboardService answers every dashboard interaction with a fresh,
// fully recomputed view. There is no event graph and no cached filtered
// state; the presentation layer pulls ComputeView per request.
type DashboardService struct {
	table     *dataset.Table
	partition analytics.StatusPartition
	logger    *zap.Logger
}

// Dependencies bundles construction inputs for the dashboard service.
type Dependencies struct {
	Table     *dataset.Table
	Partition analytics.StatusPartition
	Logger    *zap.Logger
}

// NewDashboardService constructs the service over an already cleaned
// table.
func NewDashboardService(deps Dependencies) *DashboardService {
	return &DashboardService{
		table:     deps.Table,
		partition: deps.Partition,
		logger:    deps.Logger,
	}
}

// ViewModel is everything the dashboard renders for one filter
// selection: KPI scalars plus the grouped aggregate behind each chart.
type ViewModel struct {
	TotalRows    int
	FilteredRows int
	KPIs         analytics.KPISet

	SatisfactionByType     []analytics.GroupMean
	SatisfactionByPriority []analytics.GroupMean
	SatisfactionByChannel  []analytics.GroupMean
	ResolutionByPriority   []analytics.GroupMean
	VolumeByChannel        []analytics.GroupCount
	VolumeByStatus         []analytics.GroupCount
	Scatter                []analytics.ScatterPoint
}

// FilterOptions lists the selectable universe per dimension, derived
// from the dataset itself, plus the purchase-date bounds.
type FilterOptions struct {
	Priorities []string
	Channels   []string
	Statuses   []string
	Products   []string
	DateMin    *time.Time
	DateMax    *time.Time
}

// ComputeView applies the filter spec and derives all KPIs and chart
// aggregates from that one filtered subset, keeping every number on the
// page consistent.
func (s *DashboardService) ComputeView(spec dataset.FilterSpec) ViewModel {
	filtered := spec.Apply(s.table)

	return ViewModel{
		TotalRows:    len(s.table.Tickets),
		FilteredRows: len(filtered),
		KPIs:         analytics.ComputeKPIs(filtered, s.partition),

		SatisfactionByType:     analytics.MeanSatisfactionBy(filtered, analytics.ByType),
		SatisfactionByPriority: analytics.MeanSatisfactionBy(filtered, analytics.ByPriority),
		SatisfactionByChannel:  analytics.MeanSatisfactionBy(filtered, analytics.ByChannel),
		ResolutionByPriority:   analytics.MeanResolutionBy(filtered, analytics.ByPriority),
		VolumeByChannel:        analytics.VolumeBy(filtered, analytics.ByChannel),
		VolumeByStatus:         analytics.VolumeBy(filtered, analytics.ByStatus),
		Scatter:                analytics.ResolutionSatisfactionPairs(filtered),
	}
}

// FilteredTickets returns the rows for the explorer table and the CSV
// export.
func (s *DashboardService) FilteredTickets(spec dataset.FilterSpec) []domain.Ticket {
	return spec.Apply(s.table)
}

// FilterOptions derives the filter universes from the clean dataset.
func (s *DashboardService) FilterOptions() FilterOptions {
	min, max := s.table.DateBounds()
	return FilterOptions{
		Priorities: s.table.FilterOptions(analytics.ByPriority),
		Channels:   s.table.FilterOptions(analytics.ByChannel),
		Statuses:   s.table.FilterOptions(analytics.ByStatus),
		Products:   s.table.FilterOptions(analytics.ByProduct),
		DateMin:    min,
		DateMax:    max,
	}
}

// Header exposes the source column order for the export writer.
func (s *DashboardService) Header() []string {
	return s.table.Header
}

// RowCount reports the size of the clean dataset.
func (s *DashboardService) RowCount() int {
	return len(s.table.Tickets)
}
