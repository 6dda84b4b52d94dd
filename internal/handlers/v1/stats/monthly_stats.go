package stats

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ginny-app/ginny-server/internal/service"
)

// MonthlyStatsInput is the Huma input for monthly stats.
type MonthlyStatsInput struct {
	Year  int `query:"year" minimum:"2000" maximum:"2100" doc:"Calendar year, defaults to the current year"`
	Month int `query:"month" minimum:"1" maximum:"12" doc:"Calendar month 1-12, defaults to the current month"`
}

// MonthlyStatsResponseBody is the response body for monthly stats.
type MonthlyStatsResponseBody struct {
	Income   string `json:"income" doc:"Total income for the month"`
	Expenses string `json:"expenses" doc:"Total expenses for the month"`
}

// MonthlyStatsOutput is the Huma output for monthly stats.
type MonthlyStatsOutput struct {
	Body MonthlyStatsResponseBody
}

// monthlyStatsGetter is the interface for computing monthly totals.
type monthlyStatsGetter interface {
	MonthlyStats(ctx context.Context, year, month int) (*service.MonthlyStats, error)
}

// MonthlyStatsHandler handles GET /v1/stats/monthly.
type MonthlyStatsHandler struct {
	StatsService monthlyStatsGetter
}

// NewMonthlyStatsHandler creates a new MonthlyStatsHandler.
func NewMonthlyStatsHandler(svc monthlyStatsGetter) *MonthlyStatsHandler {
	return &MonthlyStatsHandler{StatsService: svc}
}

// Register registers the monthly stats endpoint with the Huma API.
func (h *MonthlyStatsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-monthly-stats",
		Method:      http.MethodGet,
		Path:        "/v1/stats/monthly",
		Summary:     "Get monthly stats",
		Description: "Returns income and expense totals for one calendar month.",
		Tags:        []string{"Stats"},
	}, h.handle)
}

// defaultYearMonth fills missing year or month with the current date.
func defaultYearMonth(year, month int) (int, int) {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	return year, month
}

func (h *MonthlyStatsHandler) handle(ctx context.Context, input *MonthlyStatsInput) (*MonthlyStatsOutput, error) {
	year, month := defaultYearMonth(input.Year, input.Month)

	stats, err := h.StatsService.MonthlyStats(ctx, year, month)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get stats", err)
	}

	return &MonthlyStatsOutput{Body: MonthlyStatsResponseBody{
		Income:   stats.Income.String(),
		Expenses: stats.Expenses.String(),
	}}, nil
}
