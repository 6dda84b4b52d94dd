package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ginny-app/ginny-server/internal/parser"
	"github.com/ginny-app/ginny-server/internal/storage"
	"github.com/ginny-app/ginny-server/internal/storage/sqlconfig"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
	users   *UserService
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, users *UserService) *TransactionService {
	return &TransactionService{storage: store, users: users}
}

// ListTransactions returns all of the current user's transactions, newest
// first.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]Transaction, error) {
	user, err := s.users.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Transactions.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = Transaction{
			ID:              row.ID,
			UserID:          row.UserID,
			Amount:          row.Amount,
			Type:            parser.TransactionType(row.Type),
			Category:        parser.Category(row.Category),
			Description:     row.Description,
			BankName:        row.BankName,
			EmailID:         row.EmailID,
			TransactionDate: row.TransactionDate,
			CreatedAt:       row.CreatedAt,
		}
	}
	return converted, nil
}

type demoTransaction struct {
	amount      string
	txType      parser.TransactionType
	category    parser.Category
	description string
	bankName    string
	daysAgo     int
}

// Sample activity from the banks Dominican users see most.
var demoTransactions = []demoTransaction{
	{"65000", parser.TypeIncome, parser.CategorySalary, "Nómina Quincenal - Empresa XYZ", "Banreservas", 1},
	{"3500", parser.TypeExpense, parser.CategoryUtilities, "Pago EDENORTE Luz", "Banreservas", 2},
	{"1800", parser.TypeExpense, parser.CategoryUtilities, "Pago CAASD Agua", "Banreservas", 3},
	{"2200", parser.TypeExpense, parser.CategoryFood, "Supermercado Bravo", "Banreservas", 5},

	{"4500", parser.TypeExpense, parser.CategoryShopping, "Compra Blue Mall", "Banco Popular", 1},
	{"1200", parser.TypeExpense, parser.CategoryFood, "Jumbo Supermercados", "Banco Popular", 2},
	{"15000", parser.TypeIncome, parser.CategoryTransfer, "Transferencia recibida", "Banco Popular", 4},
	{"890", parser.TypeExpense, parser.CategoryTransport, "Parqueo Ágora Mall", "Banco Popular", 6},

	{"2800", parser.TypeExpense, parser.CategoryEntertainment, "Caribbean Cinemas", "BHD León", 1},
	{"1500", parser.TypeExpense, parser.CategoryFood, "Restaurante Mesón D'Bari", "BHD León", 3},
	{"950", parser.TypeExpense, parser.CategoryTransport, "Uber RD", "BHD León", 4},
	{"5200", parser.TypeExpense, parser.CategoryShopping, "La Sirena Megacentro", "BHD León", 7},

	{"1100", parser.TypeExpense, parser.CategoryEntertainment, "Netflix + HBO Max", "Scotiabank", 2},
	{"2500", parser.TypeExpense, parser.CategoryUtilities, "Claro Internet + Cable", "Scotiabank", 5},
	{"8000", parser.TypeIncome, parser.CategoryTransfer, "Pago freelance", "Scotiabank", 8},

	{"750", parser.TypeExpense, parser.CategoryHealth, "Farmacia Carol", "Banco Santa Cruz", 1},
	{"3200", parser.TypeExpense, parser.CategoryHealth, "Consulta médica HOMS", "Banco Santa Cruz", 6},

	{"25000", parser.TypeIncome, parser.CategorySalary, "Bono navideño", "Asociación Popular", 3},
	{"1800", parser.TypeExpense, parser.CategoryFood, "Nacional Supermercados", "Asociación Popular", 4},
}

// SeedDemo inserts the demo transactions for the current user and returns
// how many were created. Fixed email IDs keep reseeding idempotent, already
// present rows are skipped.
func (s *TransactionService) SeedDemo(ctx context.Context) (int, error) {
	user, err := s.users.GetOrCreate(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	now := time.Now()
	for i, demo := range demoTransactions {
		amount, err := decimal.NewFromString(demo.amount)
		if err != nil {
			return created, err
		}

		_, err = s.storage.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
			UserID:          user.ID,
			Amount:          amount,
			Type:            string(demo.txType),
			Category:        string(demo.category),
			Description:     demo.description,
			BankName:        demo.bankName,
			EmailID:         fmt.Sprintf("demo-%04d", i),
			TransactionDate: now.AddDate(0, 0, -demo.daysAgo),
		})
		if err != nil {
			if errors.Is(err, sqlconfig.ErrDuplicateEmailID) {
				continue
			}
			return created, err
		}
		created++
	}
	return created, nil
}
