package dto

import "time"

// KPIResponse carries the four headline scalars plus the closed count.
// Nil averages serialize as JSON null when no values contributed.
type KPIResponse struct {
	TotalTickets       int      `json:"total_tickets"`
	AvgSatisfaction    *float64 `json:"avg_satisfaction"`
	AvgResolutionHours *float64 `json:"avg_resolution_hours"`
	OpenTickets        int      `json:"open_tickets"`
	ClosedTickets      int      `json:"closed_tickets"`
}

// GroupMeanResponse is one bar of a grouped-mean chart.
type GroupMeanResponse struct {
	Key   string  `json:"key"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// GroupCountResponse is one slice/bar of a volume chart.
type GroupCountResponse struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// ScatterPointResponse is one point of the correlation view.
type ScatterPointResponse struct {
	ResolutionHours float64 `json:"resolution_hours"`
	Satisfaction    float64 `json:"satisfaction"`
	Priority        string  `json:"priority"`
	Status          string  `json:"status"`
	Channel         string  `json:"channel"`
	Product         string  `json:"product"`
}

// DashboardCharts bundles the aggregate behind each chart.
type DashboardCharts struct {
	SatisfactionByType     []GroupMeanResponse    `json:"satisfaction_by_type"`
	SatisfactionByPriority []GroupMeanResponse    `json:"satisfaction_by_priority"`
	SatisfactionByChannel  []GroupMeanResponse    `json:"satisfaction_by_channel"`
	ResolutionByPriority   []GroupMeanResponse    `json:"resolution_by_priority"`
	VolumeByChannel        []GroupCountResponse   `json:"volume_by_channel"`
	VolumeByStatus         []GroupCountResponse   `json:"volume_by_status"`
	ResolutionSatisfaction []ScatterPointResponse `json:"resolution_satisfaction"`
}

// DashboardResponse is the full view model for one filter selection.
type DashboardResponse struct {
	TotalRows    int             `json:"total_rows"`
	FilteredRows int             `json:"filtered_rows"`
	KPIs         KPIResponse     `json:"kpis"`
	Charts       DashboardCharts `json:"charts"`
}

// FilterOptionsResponse lists selectable values per dimension and the
// purchase-date bounds for the date picker.
type FilterOptionsResponse struct {
	Priorities []string `json:"priorities"`
	Channels   []string `json:"channels"`
	Statuses   []string `json:"statuses"`
	Products   []string `json:"products"`
	DateMin    *string  `json:"date_min"`
	DateMax    *string  `json:"date_max"`
}

// TicketRowResponse is one row of the data explorer table.
type TicketRowResponse struct {
	TicketID        string     `json:"ticket_id"`
	Product         string     `json:"product"`
	PurchaseDate    *time.Time `json:"purchase_date"`
	Type            string     `json:"type"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	Channel         string     `json:"channel"`
	Satisfaction    *float64   `json:"satisfaction"`
	ResolutionHours *float64   `json:"resolution_hours"`
}
