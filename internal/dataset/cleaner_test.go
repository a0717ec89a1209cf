package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/support-analytics/internal/domain"
)

func testHeader() []string {
	return []string{
		domain.ColTicketID,
		"Customer Name",
		domain.ColProduct,
		domain.ColPurchaseDate,
		domain.ColTicketType,
		domain.ColStatus,
		domain.ColPriority,
		domain.ColChannel,
		domain.ColFirstResponse,
		domain.ColResolvedAt,
		domain.ColSatisfaction,
	}
}

// row builds a raw CSV row matching testHeader.
func row(id, purchase, ticketType, status, priority, channel, firstResponse, resolvedAt, rating string) []string {
	return []string{id, "Jane Doe", "Widget", purchase, ticketType, status, priority, channel, firstResponse, resolvedAt, rating}
}

func cleanRows(t *testing.T, rows ...[]string) *Table {
	t.Helper()
	raw := &Raw{Header: testHeader(), Rows: rows}
	return Clean(raw, zap.NewNop())
}

func TestCleanDerivesResolutionHours(t *testing.T) {
	tbl := cleanRows(t,
		row("T-1", "2023-06-01", "Technical issue", "Open", "High", "Email",
			"2023-06-02 10:00:00", "2023-06-02 16:30:00", "4"),
	)
	require.Len(t, tbl.Tickets, 1)

	got := tbl.Tickets[0]
	require.NotNil(t, got.ResolutionHours)
	assert.InDelta(t, 6.5, *got.ResolutionHours, 1e-9)
	require.NotNil(t, got.Satisfaction)
	assert.Equal(t, 4.0, *got.Satisfaction)
	require.NotNil(t, got.PurchaseDate)
	assert.Equal(t, "2023-06-01", got.PurchaseDate.Format("2006-01-02"))
}

func TestCleanNullsNegativeDuration(t *testing.T) {
	// Resolution before first response is a data quality violation,
	// not a valid short duration.
	tbl := cleanRows(t,
		row("T-1", "2024-01-01", "Billing", "Closed", "Low", "Phone",
			"2024-01-01T10:00", "2024-01-01T09:00", "3"),
	)
	require.Len(t, tbl.Tickets, 1)
	assert.Nil(t, tbl.Tickets[0].ResolutionHours)
}

func TestCleanNullsDurationWhenTimestampMissing(t *testing.T) {
	tbl := cleanRows(t,
		row("T-1", "2024-01-01", "Billing", "Open", "Low", "Phone",
			"", "2024-01-02 09:00:00", "3"),
		row("T-2", "2024-01-01", "Billing", "Open", "Low", "Phone",
			"2024-01-02 09:00:00", "", "3"),
	)
	require.Len(t, tbl.Tickets, 2)
	assert.Nil(t, tbl.Tickets[0].ResolutionHours)
	assert.Nil(t, tbl.Tickets[1].ResolutionHours)
}

func TestCleanDurationNeverNonPositive(t *testing.T) {
	// Identical timestamps give zero hours, also nulled.
	tbl := cleanRows(t,
		row("T-1", "2024-01-01", "Billing", "Open", "Low", "Phone",
			"2024-01-01 09:00:00", "2024-01-01 09:00:00", ""),
	)
	assert.Nil(t, tbl.Tickets[0].ResolutionHours)
}

func TestCleanUnparseableFieldsBecomeNull(t *testing.T) {
	tbl := cleanRows(t,
		row("T-1", "not-a-date", "Billing", "Open", "Low", "Phone",
			"garbage", "also garbage", "five"),
	)
	require.Len(t, tbl.Tickets, 1)

	got := tbl.Tickets[0]
	assert.Nil(t, got.PurchaseDate)
	assert.Nil(t, got.FirstResponseAt)
	assert.Nil(t, got.ResolvedAt)
	assert.Nil(t, got.Satisfaction)
	assert.Nil(t, got.ResolutionHours)
	// Categorical fields survive untouched.
	assert.Equal(t, "Billing", got.Type)
}

func TestCleanOutOfRangeRatingPassesThrough(t *testing.T) {
	tbl := cleanRows(t,
		row("T-1", "2024-01-01", "Billing", "Open", "Low", "Phone", "", "", "7"),
	)
	require.NotNil(t, tbl.Tickets[0].Satisfaction)
	assert.Equal(t, 7.0, *tbl.Tickets[0].Satisfaction)
}

func TestCleanIsDeterministic(t *testing.T) {
	raw := &Raw{Header: testHeader(), Rows: [][]string{
		row("T-1", "2023-06-01", "Technical issue", "Open", "High", "Email",
			"2023-06-02 10:00:00", "2023-06-02 16:30:00", "4"),
		row("T-2", "bad", "Billing", "Closed", "Low", "Phone", "", "", ""),
	}}
	first := Clean(raw, zap.NewNop())
	second := Clean(raw, zap.NewNop())
	assert.Equal(t, first, second)
}

func TestFilterOptionsDerivedFromData(t *testing.T) {
	tbl := cleanRows(t,
		row("T-1", "2024-01-01", "Billing", "Open", "High", "Email", "", "", ""),
		row("T-2", "2024-01-02", "Billing", "Closed", "Low", "Phone", "", "", ""),
		row("T-3", "2024-01-03", "Billing", "Open", "High", "Chat", "", "", ""),
	)

	assert.Equal(t, []string{"High", "Low"}, tbl.FilterOptions(func(tk *domain.Ticket) string { return tk.Priority }))
	assert.Equal(t, []string{"Email", "Phone", "Chat"}, tbl.FilterOptions(func(tk *domain.Ticket) string { return tk.Channel }))

	min, max := tbl.DateBounds()
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, "2024-01-01", min.Format("2006-01-02"))
	assert.Equal(t, "2024-01-03", max.Format("2006-01-02"))
}
