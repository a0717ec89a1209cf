package handlers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/support-analytics/internal/analytics"
	httptransport "github.com/spec-kit/support-analytics/internal/api/http"
	"github.com/spec-kit/support-analytics/internal/api/http/handlers"
	"github.com/spec-kit/support-analytics/internal/dataset"
	"github.com/spec-kit/support-analytics/internal/domain"
	"github.com/spec-kit/support-analytics/internal/observability"
	"github.com/spec-kit/support-analytics/internal/service"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	header := []string{
		domain.ColTicketID,
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
	rows := make([][]string, 0, 100)
	for i := 0; i < 100; i++ {
		priority := "Low"
		if i < 30 {
			priority = "High"
		}
		status := "Open"
		if i%2 == 0 {
			status = "Closed"
		}
		rows = append(rows, []string{
			fmt.Sprintf("T-%d", i),
			"Widget",
			"2024-03-01",
			"Technical issue",
			status,
			priority,
			"Email",
			"2024-03-02 08:00:00",
			"2024-03-02 12:00:00",
			"4",
		})
	}

	tbl := dataset.Clean(&dataset.Raw{Header: header, Rows: rows}, zap.NewNop())
	svc := service.NewDashboardService(service.Dependencies{
		Table:     tbl,
		Partition: analytics.NewStatusPartition([]string{"Closed", "Resolved"}),
		Logger:    zap.NewNop(),
	})

	logger := zap.NewNop()
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, 5*time.Second)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler("support-analytics", "test", svc, metrics),
		Dashboard: handlers.NewDashboardHandler(svc),
		Tickets:   handlers.NewTicketsHandler(svc),
		Charts:    handlers.NewChartsHandler(svc),
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestDashboardFilterConsistency(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "/api/dashboard?priority=High")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON(t, resp)
	data := body["data"].(map[string]any)
	kpis := data["kpis"].(map[string]any)

	assert.Equal(t, float64(100), data["total_rows"])
	assert.Equal(t, float64(30), data["filtered_rows"])
	assert.Equal(t, float64(30), kpis["total_tickets"])
}

func TestDashboardInvalidDateIsValidationError(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "/api/dashboard?date_from=yesterday")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeJSON(t, resp)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_FAILED", errObj["code"])
}

func TestDashboardEmptyFilterResultIsOK(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "/api/dashboard?status=Nope")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON(t, resp)
	data := body["data"].(map[string]any)
	kpis := data["kpis"].(map[string]any)

	assert.Equal(t, float64(0), data["filtered_rows"])
	assert.Nil(t, kpis["avg_satisfaction"])
	assert.Nil(t, kpis["avg_resolution_hours"])
}

func TestFilterOptionsEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "/api/filters")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON(t, resp)
	data := body["data"].(map[string]any)
	assert.ElementsMatch(t, []any{"High", "Low"}, data["priorities"])
	assert.Equal(t, "2024-03-01", data["date_min"])
}

func TestExportCSVContainsDerivedColumn(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "/api/export.csv?priority=High")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "customer_support_tickets_filtered_")

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 31) // header + 30 filtered rows
	assert.True(t, strings.HasSuffix(lines[0], domain.ColResolutionHours))
	assert.True(t, strings.HasSuffix(lines[1], ",4")) // 4 hour resolution appended
}

func TestTicketsEndpointReturnsFilteredRows(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "/api/tickets?priority=High&status=Open")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON(t, resp)
	items := body["data"].([]any)
	meta := body["meta"].(map[string]any)
	assert.Equal(t, float64(len(items)), meta["filtered_rows"])
	assert.Equal(t, float64(100), meta["total_rows"])
}

func TestChartUnknownNameIsNotFound(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "/api/charts/everything.png")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestChartEmptyFilterIsNoContent(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "/api/charts/volume-by-status.png?status=Nope")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestChartRendersPNG(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "/api/charts/volume-by-status.png")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, raw[:4])
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "/health/live")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "/health/ready")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "/health/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
