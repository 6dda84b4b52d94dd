package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const uniqueViolationCode = "23505"

var transactionColumns = []any{
	"id", "user_id", "amount", "type", "category", "description",
	"bank_name", "email_id", "transaction_date", "created_at",
}

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable creates a TransactionsTable for the given database.
func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{exec: bob.NewDB(db)}
}

// Insert creates a new transaction and returns its generated ID. A collision
// on the email_id unique index is reported as ErrDuplicateEmailID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("transactions",
			"user_id", "amount", "type", "category", "description",
			"bank_name", "email_id", "transaction_date",
		),
		im.Values(psql.Arg(
			create.UserID, create.Amount, create.Type, create.Category,
			create.Description, create.BankName, create.EmailID, create.TransactionDate,
		)),
		im.Returning("id"),
	)

	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return uuid.Nil, ErrDuplicateEmailID
		}
		return uuid.Nil, err
	}
	return id, nil
}

// FindByEmailID retrieves the transaction synced from the given source email.
// Returns (nil, nil) when no such transaction exists.
func (t *TransactionsTable) FindByEmailID(ctx context.Context, emailID string) (*Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("email_id").EQ(psql.Arg(emailID))),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Transaction]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// ListByUser returns all of a user's transactions, newest first.
func (t *TransactionsTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy(psql.Quote("transaction_date")).Desc(),
	)

	return listTransactions(ctx, t.exec, query)
}

// ListByDateRange returns a user's transactions with transaction_date in
// [start, end], newest first.
func (t *TransactionsTable) ListByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(start))),
		sm.Where(psql.Quote("transaction_date").LTE(psql.Arg(end))),
		sm.OrderBy(psql.Quote("transaction_date")).Desc(),
	)

	return listTransactions(ctx, t.exec, query)
}

func listTransactions(ctx context.Context, exec bob.Executor, query bob.Query) ([]*Transaction, error) {
	rows, err := bob.All(ctx, exec, query, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}

	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
