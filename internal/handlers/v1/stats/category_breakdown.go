package stats

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ginny-app/ginny-server/internal/parser"
	"github.com/ginny-app/ginny-server/internal/service"
)

// CategoryBreakdownInput is the Huma input for the category breakdown.
type CategoryBreakdownInput struct {
	Year  int `query:"year" minimum:"2000" maximum:"2100" doc:"Calendar year, defaults to the current year"`
	Month int `query:"month" minimum:"1" maximum:"12" doc:"Calendar month 1-12, defaults to the current month"`
}

// CategoryTotal is one category's expense total with its display metadata.
type CategoryTotal struct {
	Category string `json:"category" doc:"Category key"`
	Label    string `json:"label" doc:"Spanish display label"`
	Icon     string `json:"icon" doc:"Icon name for the client"`
	Color    string `json:"color" doc:"Hex display color"`
	Total    string `json:"total" doc:"Total expenses in this category"`
}

// CategoryBreakdownResponseBody is the response body for the category breakdown.
type CategoryBreakdownResponseBody struct {
	Categories []CategoryTotal `json:"categories" doc:"Expense totals per category, largest first"`
}

// CategoryBreakdownOutput is the Huma output for the category breakdown.
type CategoryBreakdownOutput struct {
	Body CategoryBreakdownResponseBody
}

// categoryBreakdownGetter is the interface for computing the category breakdown.
type categoryBreakdownGetter interface {
	CategoryBreakdown(ctx context.Context, year, month int) ([]service.CategoryTotal, error)
}

// CategoryBreakdownHandler handles GET /v1/stats/categories.
type CategoryBreakdownHandler struct {
	StatsService categoryBreakdownGetter
}

// NewCategoryBreakdownHandler creates a new CategoryBreakdownHandler.
func NewCategoryBreakdownHandler(svc categoryBreakdownGetter) *CategoryBreakdownHandler {
	return &CategoryBreakdownHandler{StatsService: svc}
}

// Register registers the category breakdown endpoint with the Huma API.
func (h *CategoryBreakdownHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category-breakdown",
		Method:      http.MethodGet,
		Path:        "/v1/stats/categories",
		Summary:     "Get category breakdown",
		Description: "Returns one month's expenses grouped by category, largest first.",
		Tags:        []string{"Stats"},
	}, h.handle)
}

func (h *CategoryBreakdownHandler) handle(ctx context.Context, input *CategoryBreakdownInput) (*CategoryBreakdownOutput, error) {
	year, month := defaultYearMonth(input.Year, input.Month)

	breakdown, err := h.StatsService.CategoryBreakdown(ctx, year, month)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get categories", err)
	}

	resp := CategoryBreakdownResponseBody{
		Categories: make([]CategoryTotal, len(breakdown)),
	}
	for i, entry := range breakdown {
		info := parser.Category(entry.Category).Info()
		resp.Categories[i] = CategoryTotal{
			Category: entry.Category,
			Label:    info.Label,
			Icon:     info.Icon,
			Color:    info.Color,
			Total:    entry.Total.String(),
		}
	}

	return &CategoryBreakdownOutput{Body: resp}, nil
}
