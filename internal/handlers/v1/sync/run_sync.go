package sync

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ginny-app/ginny-server/internal/logging"
	"github.com/ginny-app/ginny-server/internal/service"
)

// RunSyncResponseBody is the response body for a sync run.
type RunSyncResponseBody struct {
	Synced int `json:"synced" doc:"Transactions stored by this run"`
	Total  int `json:"total" doc:"Emails examined by this run"`
}

// RunSyncOutput is the Huma output for a sync run.
type RunSyncOutput struct {
	Body RunSyncResponseBody
}

// syncRunner is the interface for running an email sync.
type syncRunner interface {
	Sync(ctx context.Context) (*service.SyncResult, error)
}

// RunSyncHandler handles POST /v1/sync.
type RunSyncHandler struct {
	SyncService syncRunner
}

// NewRunSyncHandler creates a new RunSyncHandler.
func NewRunSyncHandler(svc syncRunner) *RunSyncHandler {
	return &RunSyncHandler{SyncService: svc}
}

// Register registers the sync endpoint with the Huma API.
func (h *RunSyncHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "run-sync",
		Method:      http.MethodPost,
		Path:        "/v1/sync",
		Summary:     "Sync bank emails",
		Description: "Fetches recent bank notification emails and stores the transactions parsed from them.",
		Tags:        []string{"Sync"},
	}, h.handle)
}

func (h *RunSyncHandler) handle(ctx context.Context, input *struct{}) (*RunSyncOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("syncMs")
	}
	result, err := h.SyncService.Sync(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError,
			"Failed to sync emails. Please reconnect your Gmail account.", err)
	}

	if logData != nil {
		logData.AddData("syncedCount", result.Synced)
		logData.AddData("totalEmails", result.Total)
	}

	return &RunSyncOutput{Body: RunSyncResponseBody{
		Synced: result.Synced,
		Total:  result.Total,
	}}, nil
}
