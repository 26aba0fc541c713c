package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind is the type of a completed balance change.
type TransactionKind string

// Supported transaction kinds.
const (
	Deposit    TransactionKind = "Deposit"
	Withdrawal TransactionKind = "Withdrawal"
)

// Transaction holds one completed balance change of an account.
type Transaction struct {
	ID        int64           `json:"id"`
	Kind      TransactionKind `json:"kind"`
	Amount    decimal.Decimal `json:"amount"` // must be positive, the kind gives the sign
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"created_at"`
}

// Describe renders the transaction as a single history line.
func (t Transaction) Describe() string {
	return fmt.Sprintf("Transaction ID: %d | Type: %s | Amount: %s %s | Timestamp: %s",
		t.ID, t.Kind, t.Amount.String(), t.Currency, t.CreatedAt.Format(time.ANSIC))
}
