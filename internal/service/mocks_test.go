package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/ginny-app/ginny-server/internal/mail"
	"github.com/ginny-app/ginny-server/internal/storage/sqlconfig"
)

// mockUserTable is a mock for sqlconfig.IUserTable.
type mockUserTable struct {
	mock.Mock
}

func (m *mockUserTable) FindByEmail(ctx context.Context, email string) (*sqlconfig.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.User), args.Error(1)
}

func (m *mockUserTable) Insert(ctx context.Context, create *sqlconfig.UserCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return uuid.Nil, args.Error(1)
	}
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// mockTransactionTable is a mock for sqlconfig.ITransactionTable.
type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) Insert(ctx context.Context, create *sqlconfig.TransactionCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return uuid.Nil, args.Error(1)
	}
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockTransactionTable) FindByEmailID(ctx context.Context, emailID string) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, emailID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Transaction), args.Error(1)
}

func (m *mockTransactionTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*sqlconfig.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlconfig.Transaction), args.Error(1)
}

func (m *mockTransactionTable) ListByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*sqlconfig.Transaction, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlconfig.Transaction), args.Error(1)
}

// mockSyncStatusTable is a mock for sqlconfig.ISyncStatusTable.
type mockSyncStatusTable struct {
	mock.Mock
}

func (m *mockSyncStatusTable) Get(ctx context.Context, userID uuid.UUID) (*sqlconfig.SyncStatus, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.SyncStatus), args.Error(1)
}

func (m *mockSyncStatusTable) Record(ctx context.Context, userID uuid.UUID, newlySynced int) error {
	args := m.Called(ctx, userID, newlySynced)
	return args.Error(0)
}

// mockMailSource is a mock for mail.Source.
type mockMailSource struct {
	mock.Mock
}

func (m *mockMailSource) Profile(ctx context.Context) (mail.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return mail.Profile{}, args.Error(1)
	}
	return args.Get(0).(mail.Profile), args.Error(1)
}

func (m *mockMailSource) FetchBankEmails(ctx context.Context, maxResults int) ([]mail.RawEmail, error) {
	args := m.Called(ctx, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]mail.RawEmail), args.Error(1)
}
