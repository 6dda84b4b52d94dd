package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ginny-app/ginny-server/internal/parser"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Amount          decimal.Decimal
	Type            parser.TransactionType
	Category        parser.Category
	Description     string
	BankName        string
	EmailID         string
	TransactionDate time.Time
	CreatedAt       time.Time
}
