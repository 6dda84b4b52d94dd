package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ginny-app/ginny-server/internal/mail"
	"github.com/ginny-app/ginny-server/internal/parser"
	"github.com/ginny-app/ginny-server/internal/storage"
	"github.com/ginny-app/ginny-server/internal/storage/sqlconfig"
)

// SyncService pulls bank notification emails from the mailbox and stores
// the transactions parsed out of them.
type SyncService struct {
	storage    *storage.Storage
	source     mail.Source
	users      *UserService
	fetchLimit int
}

// NewSyncService creates a new SyncService.
func NewSyncService(store *storage.Storage, source mail.Source, users *UserService, fetchLimit int) *SyncService {
	return &SyncService{
		storage:    store,
		source:     source,
		users:      users,
		fetchLimit: fetchLimit,
	}
}

// Sync fetches recent bank emails and stores one transaction per newly seen
// parseable email. Emails already synced, or that no transaction can be
// parsed from, are skipped without failing the run.
func (s *SyncService) Sync(ctx context.Context) (*SyncResult, error) {
	user, err := s.users.ResolveMailboxUser(ctx)
	if err != nil {
		return nil, err
	}

	emails, err := s.source.FetchBankEmails(ctx, s.fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("fetching bank emails: %w", err)
	}

	synced := 0
	for _, email := range emails {
		existing, err := s.storage.Transactions.FindByEmailID(ctx, email.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			continue
		}

		parsed, err := parser.Parse(parser.Email{
			ID:      email.ID,
			Subject: email.Subject,
			From:    email.From,
			Date:    email.Date,
			Body:    email.Body,
			Snippet: email.Snippet,
		})
		if err != nil {
			logrus.WithError(err).WithField("emailID", email.ID).Warn("SyncService.Sync.skipping unparseable email")
			continue
		}
		if parsed == nil {
			continue
		}

		_, err = s.storage.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
			UserID:          user.ID,
			Amount:          parsed.Amount,
			Type:            string(parsed.Type),
			Category:        string(parsed.Category),
			Description:     parsed.Description,
			BankName:        parsed.BankName,
			EmailID:         parsed.EmailID,
			TransactionDate: parsed.TransactionDate,
		})
		if err != nil {
			// A concurrent run can win the insert race. That email is
			// synced either way.
			if errors.Is(err, sqlconfig.ErrDuplicateEmailID) {
				continue
			}
			return nil, err
		}
		synced++
	}

	if err := s.storage.SyncStatus.Record(ctx, user.ID, synced); err != nil {
		return nil, err
	}

	return &SyncResult{Synced: synced, Total: len(emails)}, nil
}

// Status returns the user's cumulative sync state. A user that has never
// synced gets a zero status rather than an error.
func (s *SyncService) Status(ctx context.Context) (*SyncStatus, error) {
	user, err := s.users.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	row, err := s.storage.SyncStatus.Get(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return &SyncStatus{}, nil
	}

	status := &SyncStatus{SyncedEmailCount: row.SyncedEmailCount}
	if row.LastSyncAt.Valid {
		t := row.LastSyncAt.Time
		status.LastSyncAt = &t
	}
	return status, nil
}
