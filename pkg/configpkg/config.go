// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/go-petr/pet-atm/pkg/currencypkg"
)

// Config stores all configuration of the application.
//
// The values are read by viper from an optional config file or environment variables.
// Keys missing from both fall back to the defaults of a fresh teller.
type Config struct {
	PIN            string `mapstructure:"ATM_PIN" validate:"required,number"`
	OpeningBalance string `mapstructure:"ATM_OPENING_BALANCE" validate:"required,numeric"`
	Currency       string `mapstructure:"ATM_CURRENCY" validate:"required,currency"`
	Environement   string `mapstructure:"GO_ENV"`
	LogLevel       string `mapstructure:"LOG_LEVEL" validate:"oneof=trace debug info warn error fatal panic disabled"`
}

var defaults = map[string]string{
	"ATM_PIN":             "1234",
	"ATM_OPENING_BALANCE": "1000",
	"ATM_CURRENCY":        currencypkg.USD,
	"GO_ENV":              "production",
	"LOG_LEVEL":           "error",
}

// ErrNegativeBalance indicates negative opening balance.
var ErrNegativeBalance = errors.New("opening balance must not be negative")

// Load read configuration from the atm.env file in path or environment variables.
// A missing file is not an error.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("atm")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("cannot read config: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("cannot decode config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return c, err
	}

	return c, nil
}

// Validate checks the config fields.
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("currency", currencypkg.ValidCurrency); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	balance, err := c.Balance()
	if err != nil {
		return err
	}

	if balance.IsNegative() {
		return ErrNegativeBalance
	}

	return nil
}

// Balance returns the opening balance as decimal.
func (c Config) Balance() (decimal.Decimal, error) {
	balance, err := decimal.NewFromString(c.OpeningBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid opening balance %q: %w", c.OpeningBalance, err)
	}

	return balance, nil
}
