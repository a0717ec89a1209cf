package domain

import "time"

// Column names as they appear in the source CSV header. The cleaner's
// parsing rules key off these exact strings.
const (
	ColTicketID      = "Ticket ID"
	ColProduct       = "Product Purchased"
	ColPurchaseDate  = "Date of Purchase"
	ColTicketType    = "Ticket Type"
	ColStatus        = "Ticket Status"
	ColPriority      = "Ticket Priority"
	ColChannel       = "Ticket Channel"
	ColFirstResponse = "First Response Time"
	ColResolvedAt    = "Time to Resolution"
	ColSatisfaction  = "Customer Satisfaction Rating"

	// ColResolutionHours is the derived column appended on export.
	ColResolutionHours = "Resolution Hours"
)

// Ticket is one cleaned support-ticket record. Nullable fields are
// pointers; nil means the source value was missing or unparseable.
type Ticket struct {
	ID           string
	Product      string
	PurchaseDate *time.Time
	Type         string
	Status       string
	Priority     string
	Channel      string

	// FirstResponseAt and ResolvedAt are points in time. The source
	// column "Time to Resolution" holds a timestamp despite its name.
	FirstResponseAt *time.Time
	ResolvedAt      *time.Time

	// Satisfaction is the customer rating, nominally 1-5. Out-of-range
	// values pass through unclamped.
	Satisfaction *float64

	// ResolutionHours is ResolvedAt minus FirstResponseAt in hours.
	// Nil when either timestamp is missing or the difference is not
	// positive.
	ResolutionHours *float64

	// Raw holds the original CSV fields in header order, including
	// columns the pipeline does not interpret. Preserved for the
	// explorer view and CSV export.
	Raw []string
}
