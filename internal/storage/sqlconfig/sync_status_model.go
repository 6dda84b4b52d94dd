package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
)

// SyncStatus represents a per-user email sync status row.
type SyncStatus struct {
	ID               uuid.UUID    `db:"id"`
	UserID           uuid.UUID    `db:"user_id"`
	LastSyncAt       sql.NullTime `db:"last_sync_at"`
	SyncedEmailCount int          `db:"synced_email_count"`
}

// ISyncStatusTable defines the interface for sync status storage operations.
//
//go:generate mockery --name ISyncStatusTable --output mock_ISyncStatusTable.go
type ISyncStatusTable interface {
	Get(ctx context.Context, userID uuid.UUID) (*SyncStatus, error)

	// Record marks a completed sync: stamps last_sync_at and adds
	// newlySynced to the cumulative counter, creating the row when absent.
	Record(ctx context.Context, userID uuid.UUID, newlySynced int) error
}
