// Package tellerservice manages business logic layer of the teller.
package tellerservice

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/pkg/currencypkg"
)

// Account provides account interface needed by teller service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package tellerservice
type Account interface {
	ValidatePIN(ctx context.Context, pin string) bool
	AddBalance(ctx context.Context, amount decimal.Decimal) decimal.Decimal
	Balance(ctx context.Context) decimal.Decimal
	Currency(ctx context.Context) string
	CreateTransaction(ctx context.Context, kind domain.TransactionKind, amount decimal.Decimal, currency string) domain.Transaction
	ListTransactions(ctx context.Context) []domain.Transaction
}

// Service facilitates teller service layer logic.
//
// It holds no account state, every call gets the account to work on.
type Service struct {
	rates *currencypkg.Table
}

// New returns teller service struct to manage teller business logic.
func New(rates *currencypkg.Table) *Service {
	return &Service{rates: rates}
}

// Authenticate checks the pin against the account. The pin is compared by its integer value.
func (s *Service) Authenticate(ctx context.Context, acc Account, pin string) error {
	normalized, err := domain.NormalizePIN(pin)
	if err != nil {
		return err
	}

	if !acc.ValidatePIN(ctx, normalized) {
		return domain.ErrInvalidPIN
	}

	return nil
}

// Amounts are whole cents up to maxAmount.
const (
	maxFractionDigits = 2
	maxAmountDigits   = 12
)

var maxAmount = decimal.New(1, maxAmountDigits)

func parseAmount(ctx context.Context, amount string) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return decimal.Zero, domain.ErrInvalidAmount
	}

	// Exponent first: arithmetic on 1e-200000000 rescales through a huge big.Int.
	exp := amountDecimal.Exponent()
	if exp < -maxFractionDigits || exp > maxAmountDigits || amountDecimal.Abs().GreaterThan(maxAmount) {
		l.Info().Str("amount", amount).Err(domain.ErrInvalidAmount).Send()
		return decimal.Zero, domain.ErrInvalidAmount
	}

	if amountDecimal.LessThanOrEqual(decimal.Zero) {
		l.Info().Str("amount", amount).Err(domain.ErrNegativeAmount).Send()
		return decimal.Zero, domain.ErrNegativeAmount
	}

	return amountDecimal, nil
}

// Withdraw takes the amount from the account and records a withdrawal.
func (s *Service) Withdraw(ctx context.Context, acc Account, amount string) (domain.Transaction, error) {
	amountDecimal, err := parseAmount(ctx, amount)
	if err != nil {
		return domain.Transaction{}, err
	}

	if acc.Balance(ctx).LessThan(amountDecimal) {
		zerolog.Ctx(ctx).Info().Str("amount", amount).Err(domain.ErrInsufficientFunds).Send()
		return domain.Transaction{}, domain.ErrInsufficientFunds
	}

	acc.AddBalance(ctx, amountDecimal.Neg())

	return acc.CreateTransaction(ctx, domain.Withdrawal, amountDecimal, acc.Currency(ctx)), nil
}

// Deposit adds the amount to the account and records a deposit.
func (s *Service) Deposit(ctx context.Context, acc Account, amount string) (domain.Transaction, error) {
	amountDecimal, err := parseAmount(ctx, amount)
	if err != nil {
		return domain.Transaction{}, err
	}

	acc.AddBalance(ctx, amountDecimal)

	return acc.CreateTransaction(ctx, domain.Deposit, amountDecimal, acc.Currency(ctx)), nil
}

// Balance returns the account balance.
func (s *Service) Balance(ctx context.Context, acc Account) decimal.Decimal {
	return acc.Balance(ctx)
}

// History returns the account transactions in the order they happened.
func (s *Service) History(ctx context.Context, acc Account) []domain.Transaction {
	return acc.ListTransactions(ctx)
}

// Rates returns the exchange rates ordered by currency code.
func (s *Service) Rates(ctx context.Context) []currencypkg.Rate {
	return s.rates.Rates()
}

// Convert converts the amount between two currencies of the rates table.
func (s *Service) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	converted, err := s.rates.Convert(amount, from, to)
	if err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()

		if errors.Is(err, currencypkg.ErrUnknownCurrency) {
			return decimal.Zero, domain.ErrInvalidCurrency
		}

		return decimal.Zero, err
	}

	return converted, nil
}
