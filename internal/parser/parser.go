// Package parser turns raw bank-notification emails into structured
// transactions. It is pure pattern matching over Spanish bank alert phrasing:
// no state, no I/O, deterministic for a given input.
package parser

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Email is one raw message as fetched from the mailbox.
type Email struct {
	ID      string
	Subject string
	From    string
	Date    string
	Body    string
	Snippet string
}

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction is the parsed result for one email. Amount is always positive;
// direction is carried by Type.
type Transaction struct {
	Amount          decimal.Decimal
	Type            TransactionType
	Category        Category
	Description     string
	BankName        string
	EmailID         string
	TransactionDate time.Time
}

const (
	maxDescriptionLen   = 100
	fallbackDescription = "Bank transaction"
)

// Parse extracts a transaction from one email. It returns (nil, nil) when the
// email does not look like a transaction (no plausible amount), and an error
// only when the email's date header cannot be parsed.
func Parse(email Email) (*Transaction, error) {
	content := strings.ToLower(email.Subject + " " + email.Body + " " + email.Snippet)

	amount, ok := ExtractAmount(content)
	if !ok {
		return nil, nil
	}

	transactionDate, err := parseEmailDate(email.Date)
	if err != nil {
		return nil, fmt.Errorf("email %v: %w", email.ID, err)
	}

	return &Transaction{
		Amount:          amount,
		Type:            ClassifyDirection(content),
		Category:        ClassifyCategory(content),
		Description:     buildDescription(email.Subject),
		BankName:        IdentifyBank(email.From, content),
		EmailID:         email.ID,
		TransactionDate: transactionDate,
	}, nil
}

func buildDescription(subject string) string {
	if subject == "" {
		return fallbackDescription
	}
	runes := []rune(subject)
	if len(runes) > maxDescriptionLen {
		return string(runes[:maxDescriptionLen]) + "..."
	}
	return subject
}

// parseEmailDate accepts the RFC 5322 date format Gmail delivers, with an
// RFC 3339 fallback for sources that already normalized the header.
func parseEmailDate(raw string) (time.Time, error) {
	if parsed, err := mail.ParseDate(raw); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	return time.Time{}, fmt.Errorf("unparseable email date %q", raw)
}
