package sqlconfig

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a stored transaction row.
type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	Amount          decimal.Decimal `db:"amount"`
	Type            string          `db:"type"`
	Category        string          `db:"category"`
	Description     string          `db:"description"`
	BankName        string          `db:"bank_name"`
	EmailID         string          `db:"email_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID          uuid.UUID
	Amount          decimal.Decimal
	Type            string
	Category        string
	Description     string
	BankName        string
	EmailID         string
	TransactionDate time.Time
}

// ErrDuplicateEmailID reports an insert that collided with the unique index
// on email_id. Concurrent syncs race on the same message; the constraint is
// the authoritative dedup and callers treat this as "already synced".
var ErrDuplicateEmailID = errors.New("transaction for this email id already exists")

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	FindByEmailID(ctx context.Context, emailID string) (*Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Transaction, error)
	ListByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*Transaction, error)
}
