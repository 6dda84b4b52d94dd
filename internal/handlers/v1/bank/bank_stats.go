package bank

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ginny-app/ginny-server/internal/service"
)

// BankStatsInput is the Huma input for one bank's monthly stats.
type BankStatsInput struct {
	Bank  string `query:"bank" required:"true" doc:"Display name of the bank"`
	Year  int    `query:"year" minimum:"2000" maximum:"2100" doc:"Calendar year, defaults to the current year"`
	Month int    `query:"month" minimum:"1" maximum:"12" doc:"Calendar month 1-12, defaults to the current month"`
}

// BankCategoryTotal is one category's expense total at a bank.
type BankCategoryTotal struct {
	Category string `json:"category" doc:"Category key"`
	Total    string `json:"total" doc:"Total expenses in this category"`
}

// BankStatsResponseBody is the response body for one bank's monthly stats.
type BankStatsResponseBody struct {
	Income     string              `json:"income" doc:"Total income at this bank for the month"`
	Expenses   string              `json:"expenses" doc:"Total expenses at this bank for the month"`
	Categories []BankCategoryTotal `json:"categories" doc:"Expense totals per category, largest first"`
}

// BankStatsOutput is the Huma output for one bank's monthly stats.
type BankStatsOutput struct {
	Body BankStatsResponseBody
}

// bankStatsGetter is the interface for computing one bank's monthly stats.
type bankStatsGetter interface {
	StatsByBank(ctx context.Context, bankName string, year, month int) (*service.BankStats, error)
}

// BankStatsHandler handles GET /v1/stats/by-bank.
type BankStatsHandler struct {
	StatsService bankStatsGetter
}

// NewBankStatsHandler creates a new BankStatsHandler.
func NewBankStatsHandler(svc bankStatsGetter) *BankStatsHandler {
	return &BankStatsHandler{StatsService: svc}
}

// Register registers the bank stats endpoint with the Huma API.
func (h *BankStatsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-bank-stats",
		Method:      http.MethodGet,
		Path:        "/v1/stats/by-bank",
		Summary:     "Get stats for one bank",
		Description: "Returns one bank's monthly totals with an expense breakdown per category.",
		Tags:        []string{"Banks"},
	}, h.handle)
}

func (h *BankStatsHandler) handle(ctx context.Context, input *BankStatsInput) (*BankStatsOutput, error) {
	if input.Bank == "" {
		return nil, huma.NewError(http.StatusBadRequest, "bank is required")
	}

	year, month := input.Year, input.Month
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}

	stats, err := h.StatsService.StatsByBank(ctx, input.Bank, year, month)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get bank stats", err)
	}

	resp := BankStatsResponseBody{
		Income:     stats.Income.String(),
		Expenses:   stats.Expenses.String(),
		Categories: make([]BankCategoryTotal, len(stats.Categories)),
	}
	for i, entry := range stats.Categories {
		resp.Categories[i] = BankCategoryTotal{
			Category: entry.Category,
			Total:    entry.Total.String(),
		}
	}

	return &BankStatsOutput{Body: resp}, nil
}
