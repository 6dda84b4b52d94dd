package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var syncStatusColumns = []any{"id", "user_id", "last_sync_at", "synced_email_count"}

var _ ISyncStatusTable = (*SyncStatusTable)(nil)

// SyncStatusTable provides access to the email_sync_status table.
type SyncStatusTable struct {
	exec bob.Executor
}

// NewSyncStatusTable creates a SyncStatusTable for the given database.
func NewSyncStatusTable(db *sql.DB) *SyncStatusTable {
	return &SyncStatusTable{exec: bob.NewDB(db)}
}

// Get retrieves a user's sync status. Returns (nil, nil) when the user has
// never synced.
func (t *SyncStatusTable) Get(ctx context.Context, userID uuid.UUID) (*SyncStatus, error) {
	query := psql.Select(
		sm.Columns(syncStatusColumns...),
		sm.From("email_sync_status"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[SyncStatus]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Record stamps last_sync_at with now and accumulates newlySynced into
// synced_email_count, inserting the row on first sync.
func (t *SyncStatusTable) Record(ctx context.Context, userID uuid.UUID, newlySynced int) error {
	now := time.Now()

	existing, err := t.Get(ctx, userID)
	if err != nil {
		return err
	}

	if existing == nil {
		query := psql.Insert(
			im.Into("email_sync_status", "user_id", "last_sync_at", "synced_email_count"),
			im.Values(psql.Arg(userID, now, newlySynced)),
		)
		_, err := bob.Exec(ctx, t.exec, query)
		return err
	}

	query := psql.Update(
		um.Table("email_sync_status"),
		um.SetCol("last_sync_at").ToArg(now),
		um.SetCol("synced_email_count").ToArg(existing.SyncedEmailCount+newlySynced),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	_, err = bob.Exec(ctx, t.exec, query)
	return err
}
