// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/pkg/passpkg"
)

// RepoMem keeps a single account in memory for the lifetime of the process.
type RepoMem struct {
	hashedPIN string
	balance   decimal.Decimal
	currency  string
	history   []domain.Transaction
	lastID    int64
	now       func() time.Time
}

// NewRepoMem returns account RepoMem with the opening balance.
func NewRepoMem(hashedPIN string, balance decimal.Decimal, currency string) *RepoMem {
	return &RepoMem{
		hashedPIN: hashedPIN,
		balance:   balance,
		currency:  currency,
		now:       time.Now,
	}
}

// ValidatePIN reports whether the pin matches the account PIN.
func (r *RepoMem) ValidatePIN(ctx context.Context, pin string) bool {
	if err := passpkg.Check(pin, r.hashedPIN); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Msg("pin mismatch")
		return false
	}

	return true
}

// AddBalance adds the amount to the balance. The amount can be negative.
func (r *RepoMem) AddBalance(ctx context.Context, amount decimal.Decimal) decimal.Decimal {
	r.balance = r.balance.Add(amount)

	zerolog.Ctx(ctx).Debug().
		Str("amount", amount.String()).
		Str("balance", r.balance.String()).
		Msg("balance changed")

	return r.balance
}

// Balance returns the current balance.
func (r *RepoMem) Balance(ctx context.Context) decimal.Decimal {
	return r.balance
}

// Currency returns the account currency.
func (r *RepoMem) Currency(ctx context.Context) string {
	return r.currency
}

// CreateTransaction appends the transaction to the history and then returns it.
func (r *RepoMem) CreateTransaction(ctx context.Context, kind domain.TransactionKind, amount decimal.Decimal, currency string) domain.Transaction {
	r.lastID++

	t := domain.Transaction{
		ID:        r.lastID,
		Kind:      kind,
		Amount:    amount,
		Currency:  currency,
		CreatedAt: r.now(),
	}

	r.history = append(r.history, t)

	zerolog.Ctx(ctx).Debug().
		Int64("transaction_id", t.ID).
		Str("kind", string(kind)).
		Msg("transaction recorded")

	return t
}

// ListTransactions returns the history in insertion order.
func (r *RepoMem) ListTransactions(ctx context.Context) []domain.Transaction {
	history := make([]domain.Transaction, len(r.history))
	copy(history, r.history)

	return history
}
