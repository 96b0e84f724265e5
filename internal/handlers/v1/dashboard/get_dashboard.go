package dashboard

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-insights/internal/handlers/httperr"
	"github.com/carson-networks/budget-insights/internal/service"
)

// GetDashboardInput is the Huma input for the dashboard. Every parameter is
// optional; month and year only select a month when sent together.
type GetDashboardInput struct {
	StartDate string `query:"start_date" doc:"RFC3339 start of the window, inclusive"`
	EndDate   string `query:"end_date" doc:"RFC3339 end of the window, inclusive"`
	Month     string `query:"month" doc:"Calendar month 1-12, with year overrides the dates"`
	Year      string `query:"year" doc:"Calendar year >= 2000, with month overrides the dates"`
}

// GetDashboardOutput is the Huma output for the dashboard.
type GetDashboardOutput struct {
	Body DashboardBody
}

// dashboardComputer is the interface for computing dashboards.
type dashboardComputer interface {
	ComputeDashboard(ctx context.Context, query service.DashboardQuery) (*service.Dashboard, error)
}

// GetDashboardHandler handles GET /v1/dashboard.
type GetDashboardHandler struct {
	DashboardService dashboardComputer
}

// NewGetDashboardHandler creates a new GetDashboardHandler.
func NewGetDashboardHandler(svc dashboardComputer) *GetDashboardHandler {
	return &GetDashboardHandler{DashboardService: svc}
}

// Register registers the dashboard endpoint with the Huma API.
func (h *GetDashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard",
		Summary:     "Get dashboard",
		Description: "Returns category spending, monthly trends, totals and budget status for a window.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

// ParseDashboardQuery turns raw parameters into a query. Range checks on the
// values are left to the service.
func ParseDashboardQuery(startDate, endDate, month, year string) (service.DashboardQuery, error) {
	var query service.DashboardQuery
	var err error

	if query.StartDate, err = parseOptionalTime(startDate); err != nil {
		return query, huma.NewError(http.StatusBadRequest, "invalid start_date", err)
	}
	if query.EndDate, err = parseOptionalTime(endDate); err != nil {
		return query, huma.NewError(http.StatusBadRequest, "invalid end_date", err)
	}
	if query.Month, err = parseOptionalInt(month); err != nil {
		return query, huma.NewError(http.StatusBadRequest, "invalid month", err)
	}
	if query.Year, err = parseOptionalInt(year); err != nil {
		return query, huma.NewError(http.StatusBadRequest, "invalid year", err)
	}
	return query, nil
}

func parseOptionalTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseOptionalInt(value string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (h *GetDashboardHandler) handle(ctx context.Context, input *GetDashboardInput) (*GetDashboardOutput, error) {
	query, err := ParseDashboardQuery(input.StartDate, input.EndDate, input.Month, input.Year)
	if err != nil {
		return nil, err
	}

	dashboard, err := h.DashboardService.ComputeDashboard(ctx, query)
	if err != nil {
		return nil, httperr.FromRead(err, "failed to compute dashboard")
	}

	return &GetDashboardOutput{Body: NewDashboardBody(dashboard)}, nil
}
