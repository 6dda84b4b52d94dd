package sync

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ginny-app/ginny-server/internal/service"
)

// SyncStatusResponseBody is the response body for the sync status.
type SyncStatusResponseBody struct {
	LastSyncAt       *string `json:"lastSyncAt" doc:"RFC3339 time of the last sync, null before the first sync"`
	SyncedEmailCount int     `json:"syncedEmailCount" doc:"Cumulative count of emails synced into transactions"`
}

// SyncStatusOutput is the Huma output for the sync status.
type SyncStatusOutput struct {
	Body SyncStatusResponseBody
}

// syncStatusGetter is the interface for reading the sync status.
type syncStatusGetter interface {
	Status(ctx context.Context) (*service.SyncStatus, error)
}

// SyncStatusHandler handles GET /v1/sync/status.
type SyncStatusHandler struct {
	SyncService syncStatusGetter
}

// NewSyncStatusHandler creates a new SyncStatusHandler.
func NewSyncStatusHandler(svc syncStatusGetter) *SyncStatusHandler {
	return &SyncStatusHandler{SyncService: svc}
}

// Register registers the sync status endpoint with the Huma API.
func (h *SyncStatusHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-sync-status",
		Method:      http.MethodGet,
		Path:        "/v1/sync/status",
		Summary:     "Get sync status",
		Description: "Returns when the last sync ran and how many emails have been synced in total.",
		Tags:        []string{"Sync"},
	}, h.handle)
}

func (h *SyncStatusHandler) handle(ctx context.Context, input *struct{}) (*SyncStatusOutput, error) {
	status, err := h.SyncService.Status(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get sync status", err)
	}

	resp := SyncStatusResponseBody{SyncedEmailCount: status.SyncedEmailCount}
	if status.LastSyncAt != nil {
		formatted := status.LastSyncAt.Format(time.RFC3339)
		resp.LastSyncAt = &formatted
	}

	return &SyncStatusOutput{Body: resp}, nil
}
