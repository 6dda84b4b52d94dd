package service

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ginny-app/ginny-server/internal/storage"
	"github.com/ginny-app/ginny-server/internal/storage/sqlconfig"
)

// unknownBankBucket groups transactions with no identified bank.
const unknownBankBucket = "Otro"

// StatsService computes aggregates over a user's transactions.
type StatsService struct {
	storage *storage.Storage
	users   *UserService
}

// NewStatsService creates a new StatsService.
func NewStatsService(store *storage.Storage, users *UserService) *StatsService {
	return &StatsService{storage: store, users: users}
}

// monthRange returns the inclusive bounds of a calendar month in UTC.
func monthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 23, 59, 59, 0, time.UTC)
	return start, end
}

// MonthlyStats totals income and expenses for the given month.
func (s *StatsService) MonthlyStats(ctx context.Context, year, month int) (*MonthlyStats, error) {
	user, err := s.users.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	start, end := monthRange(year, month)
	rows, err := s.storage.Transactions.ListByDateRange(ctx, user.ID, start, end)
	if err != nil {
		return nil, err
	}

	stats := &MonthlyStats{}
	for _, row := range rows {
		if row.Type == "income" {
			stats.Income = stats.Income.Add(row.Amount)
		} else {
			stats.Expenses = stats.Expenses.Add(row.Amount)
		}
	}
	return stats, nil
}

// CategoryBreakdown totals the month's expenses per category, largest first.
// Income is excluded.
func (s *StatsService) CategoryBreakdown(ctx context.Context, year, month int) ([]CategoryTotal, error) {
	user, err := s.users.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	start, end := monthRange(year, month)
	rows, err := s.storage.Transactions.ListByDateRange(ctx, user.ID, start, end)
	if err != nil {
		return nil, err
	}

	expenses := make([]*sqlconfig.Transaction, 0, len(rows))
	for _, row := range rows {
		if row.Type != "income" {
			expenses = append(expenses, row)
		}
	}
	return categoryTotals(expenses), nil
}

// BanksSummary aggregates all of the user's transactions per bank, ordered
// by transaction count descending. Unidentified banks land in one "Otro"
// bucket.
func (s *StatsService) BanksSummary(ctx context.Context) ([]BankSummary, error) {
	user, err := s.users.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Transactions.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	byBank := map[string]*BankSummary{}
	order := []string{}
	for _, row := range rows {
		name := row.BankName
		if name == "" {
			name = unknownBankBucket
		}
		summary, ok := byBank[name]
		if !ok {
			summary = &BankSummary{BankName: name}
			byBank[name] = summary
			order = append(order, name)
		}

		summary.TransactionCount++
		if row.Type == "income" {
			summary.TotalIncome = summary.TotalIncome.Add(row.Amount)
		} else {
			summary.TotalExpenses = summary.TotalExpenses.Add(row.Amount)
		}
	}

	summaries := make([]BankSummary, 0, len(order))
	for _, name := range order {
		summary := byBank[name]
		summary.Balance = summary.TotalIncome.Sub(summary.TotalExpenses)
		summaries = append(summaries, *summary)
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TransactionCount > summaries[j].TransactionCount
	})
	return summaries, nil
}

// StatsByBank totals one bank's activity for the given month, with an
// expense breakdown per category.
func (s *StatsService) StatsByBank(ctx context.Context, bankName string, year, month int) (*BankStats, error) {
	user, err := s.users.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	start, end := monthRange(year, month)
	rows, err := s.storage.Transactions.ListByDateRange(ctx, user.ID, start, end)
	if err != nil {
		return nil, err
	}

	stats := &BankStats{Categories: []CategoryTotal{}}
	expenses := []*sqlconfig.Transaction{}
	for _, row := range rows {
		if row.BankName != bankName {
			continue
		}
		if row.Type == "income" {
			stats.Income = stats.Income.Add(row.Amount)
		} else {
			stats.Expenses = stats.Expenses.Add(row.Amount)
			expenses = append(expenses, row)
		}
	}
	stats.Categories = categoryTotals(expenses)
	return stats, nil
}

func categoryTotals(rows []*sqlconfig.Transaction) []CategoryTotal {
	totals := map[string]decimal.Decimal{}
	order := []string{}
	for _, row := range rows {
		if _, ok := totals[row.Category]; !ok {
			order = append(order, row.Category)
		}
		totals[row.Category] = totals[row.Category].Add(row.Amount)
	}

	result := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		result = append(result, CategoryTotal{Category: category, Total: totals[category]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total.GreaterThan(result[j].Total)
	})
	return result
}
