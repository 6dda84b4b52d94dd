package service

import "github.com/shopspring/decimal"

// MonthlyStats holds income and expense totals for one calendar month.
type MonthlyStats struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// CategoryTotal is an expense total for one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// BankSummary aggregates a user's activity at one bank.
type BankSummary struct {
	BankName         string
	TransactionCount int
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	Balance          decimal.Decimal
}

// BankStats holds one bank's monthly totals with its expense breakdown.
type BankStats struct {
	Income     decimal.Decimal
	Expenses   decimal.Decimal
	Categories []CategoryTotal
}
