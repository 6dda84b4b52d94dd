package bank

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ginny-app/ginny-server/internal/service"
)

// BankSummary is the API response model for one bank's aggregate activity.
type BankSummary struct {
	BankName         string `json:"bankName" doc:"Display name of the bank, \"Otro\" for unidentified banks"`
	TransactionCount int    `json:"transactionCount" doc:"Number of transactions at this bank"`
	TotalIncome      string `json:"totalIncome" doc:"Total income at this bank"`
	TotalExpenses    string `json:"totalExpenses" doc:"Total expenses at this bank"`
	Balance          string `json:"balance" doc:"Income minus expenses"`
}

// ListBanksResponseBody is the response body for listing banks.
type ListBanksResponseBody struct {
	Banks []BankSummary `json:"banks" doc:"Per-bank summaries, most active first"`
}

// ListBanksOutput is the Huma output for listing banks.
type ListBanksOutput struct {
	Body ListBanksResponseBody
}

// banksSummarizer is the interface for summarizing activity per bank.
type banksSummarizer interface {
	BanksSummary(ctx context.Context) ([]service.BankSummary, error)
}

// ListBanksHandler handles GET /v1/banks.
type ListBanksHandler struct {
	StatsService banksSummarizer
}

// NewListBanksHandler creates a new ListBanksHandler.
func NewListBanksHandler(svc banksSummarizer) *ListBanksHandler {
	return &ListBanksHandler{StatsService: svc}
}

// Register registers the list banks endpoint with the Huma API.
func (h *ListBanksHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-banks",
		Method:      http.MethodGet,
		Path:        "/v1/banks",
		Summary:     "List banks",
		Description: "Returns aggregate activity per bank, ordered by transaction count.",
		Tags:        []string{"Banks"},
	}, h.handle)
}

func (h *ListBanksHandler) handle(ctx context.Context, input *struct{}) (*ListBanksOutput, error) {
	summaries, err := h.StatsService.BanksSummary(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get banks", err)
	}

	resp := ListBanksResponseBody{Banks: make([]BankSummary, len(summaries))}
	for i, summary := range summaries {
		resp.Banks[i] = BankSummary{
			BankName:         summary.BankName,
			TransactionCount: summary.TransactionCount,
			TotalIncome:      summary.TotalIncome.String(),
			TotalExpenses:    summary.TotalExpenses.String(),
			Balance:          summary.Balance.String(),
		}
	}

	return &ListBanksOutput{Body: resp}, nil
}
