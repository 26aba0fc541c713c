// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrInvalidPIN indicates that the entered PIN does not match the account PIN.
	ErrInvalidPIN = errors.New("invalid PIN")
	// ErrInsufficientFunds indicates that the account balance is lower than the requested amount.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidAmount indicates an amount that cannot be parsed or is out of range.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates zero or negative amount.
	ErrNegativeAmount = errors.New("amount must be positive")
	// ErrInvalidCurrency indicates that the currency code is not in the rates table.
	ErrInvalidCurrency = errors.New("invalid currency")
	// ErrInvalidChoice indicates unknown menu option.
	ErrInvalidChoice = errors.New("invalid choice")
)

// NormalizePIN returns the canonical form of an integer PIN,
// so "01234", "+1234" and "1234" are the same PIN.
func NormalizePIN(pin string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(pin))
	if err != nil {
		return "", ErrInvalidPIN
	}

	return strconv.Itoa(n), nil
}
