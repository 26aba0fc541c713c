// Package currencypkg provides common currency related functionality for apps.
package currencypkg

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Constants for all supported currencies.
const (
	USD = "USD"
	EUR = "EUR"
	GBP = "GBP"
)

// Base is the currency every rate is quoted against.
const Base = USD

// SupportedCurrencies holds all the supported currencies.
var SupportedCurrencies = []string{
	USD,
	EUR,
	GBP,
}

// IsSupportedCurrency returns true if the currency is supported.
func IsSupportedCurrency(currency string) bool {
	for _, c := range SupportedCurrencies {
		if c == currency {
			return true
		}
	}

	return false
}

// ValidCurrency validates whether the currency is supported.
var ValidCurrency validator.Func = func(fl validator.FieldLevel) bool {
	if c, ok := fl.Field().Interface().(string); ok {
		return IsSupportedCurrency(c)
	}
	return false
}

var (
	// ErrUnknownCurrency indicates that the currency code is missing from the table.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrInvalidBase indicates that the base currency is missing or its rate is not 1.
	ErrInvalidBase = errors.New("base currency must have rate 1")
	// ErrInvalidRate indicates zero or negative rate.
	ErrInvalidRate = errors.New("rate must be positive")
)

// Rate is the price of one base currency unit in Code.
type Rate struct {
	Code string
	Rate decimal.Decimal
}

// DefaultRates returns the static rates the teller starts with.
func DefaultRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		USD: decimal.RequireFromString("1.0"),
		EUR: decimal.RequireFromString("0.93"),
		GBP: decimal.RequireFromString("0.82"),
	}
}

// Table is a read-only set of exchange rates against a base currency.
type Table struct {
	base  string
	rates map[string]decimal.Decimal
}

// NewTable returns rates table. The rates map is copied.
func NewTable(base string, rates map[string]decimal.Decimal) (*Table, error) {
	baseRate, ok := rates[base]
	if !ok || !baseRate.Equal(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBase, base)
	}

	t := &Table{
		base:  base,
		rates: make(map[string]decimal.Decimal, len(rates)),
	}

	for code, rate := range rates {
		if rate.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: %s %s", ErrInvalidRate, code, rate)
		}

		t.rates[code] = rate
	}

	return t, nil
}

// NewDefaultTable returns table built from DefaultRates.
func NewDefaultTable() *Table {
	t, err := NewTable(Base, DefaultRates())
	if err != nil {
		panic(err)
	}

	return t
}

// Base returns the base currency code.
func (t *Table) Base() string {
	return t.base
}

// IsSupported reports whether the table has a rate for the code.
func (t *Table) IsSupported(code string) bool {
	_, ok := t.rates[code]
	return ok
}

// Convert converts amount from one currency to another through the base currency.
func (t *Table) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	fromRate, ok := t.rates[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownCurrency, from)
	}

	toRate, ok := t.rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownCurrency, to)
	}

	if from == to {
		return amount, nil
	}

	return amount.Div(fromRate).Mul(toRate), nil
}

// Rates returns all rates ordered by currency code.
func (t *Table) Rates() []Rate {
	codes := make([]string, 0, len(t.rates))
	for code := range t.rates {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	rates := make([]Rate, 0, len(codes))
	for _, code := range codes {
		rates = append(rates, Rate{Code: code, Rate: t.rates[code]})
	}

	return rates
}
