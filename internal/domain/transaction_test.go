package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDescribe(t *testing.T) {
	tx := Transaction{
		ID:        7,
		Kind:      Deposit,
		Amount:    decimal.RequireFromString("12.5"),
		Currency:  "EUR",
		CreatedAt: time.Date(2024, time.March, 1, 9, 5, 3, 0, time.UTC),
	}

	want := "Transaction ID: 7 | Type: Deposit | Amount: 12.5 EUR | Timestamp: Fri Mar  1 09:05:03 2024"
	if got := tx.Describe(); got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}
