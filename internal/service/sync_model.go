package service

import "time"

// SyncResult summarizes one sync run. Synced counts newly stored
// transactions, Total the emails examined.
type SyncResult struct {
	Synced int
	Total  int
}

// SyncStatus reports a user's cumulative sync state. LastSyncAt is nil
// when the user has never synced.
type SyncStatus struct {
	LastSyncAt       *time.Time
	SyncedEmailCount int
}
