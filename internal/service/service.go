package service

import (
	"github.com/ginny-app/ginny-server/internal/mail"
	"github.com/ginny-app/ginny-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Stats       *StatsService
	User        *UserService
	Sync        *SyncService
}

// NewService creates a new Service with the given storage and mail source.
func NewService(store *storage.Storage, source mail.Source, fetchLimit int) *Service {
	users := NewUserService(store, source)
	return &Service{
		Transaction: NewTransactionService(store, users),
		Stats:       NewStatsService(store, users),
		User:        users,
		Sync:        NewSyncService(store, source, users, fetchLimit),
	}
}
