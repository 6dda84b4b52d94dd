package parser

import "regexp"

// incomePattern holds the income cues. Everything else is an expense: bank
// alert streams are overwhelmingly expense notifications, so expense is the
// safe default.
var incomePattern = regexp.MustCompile(`deposito|depósito|abono|crédito|salario|nómina|ingreso|transferencia recibida`)

// ClassifyDirection decides income vs. expense from the combined text.
func ClassifyDirection(content string) TransactionType {
	if incomePattern.MatchString(content) {
		return TypeIncome
	}
	return TypeExpense
}
