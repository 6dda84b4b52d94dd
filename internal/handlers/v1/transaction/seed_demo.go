package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// SeedDemoResponseBody is the response body for seeding demo transactions.
type SeedDemoResponseBody struct {
	Created int `json:"created" doc:"How many demo transactions were created"`
}

// SeedDemoOutput is the Huma output for seeding demo transactions.
type SeedDemoOutput struct {
	Body SeedDemoResponseBody
}

// demoSeeder is the interface for seeding demo transactions.
type demoSeeder interface {
	SeedDemo(ctx context.Context) (int, error)
}

// SeedDemoHandler handles POST /v1/transactions/demo.
type SeedDemoHandler struct {
	TransactionService demoSeeder
}

// NewSeedDemoHandler creates a new SeedDemoHandler.
func NewSeedDemoHandler(svc demoSeeder) *SeedDemoHandler {
	return &SeedDemoHandler{TransactionService: svc}
}

// Register registers the demo seed endpoint with the Huma API.
func (h *SeedDemoHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "seed-demo-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transactions/demo",
		Summary:     "Seed demo transactions",
		Description: "Inserts sample Dominican bank transactions for the current user. Reseeding is a no-op.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *SeedDemoHandler) handle(ctx context.Context, input *struct{}) (*SeedDemoOutput, error) {
	created, err := h.TransactionService.SeedDemo(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create demo transactions", err)
	}

	return &SeedDemoOutput{Body: SeedDemoResponseBody{Created: created}}, nil
}
