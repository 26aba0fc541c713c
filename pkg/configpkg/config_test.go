package configpkg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "atm.env"), []byte(content), 0o600)
	if err != nil {
		t.Fatalf("os.WriteFile() returned error: %v", err)
	}

	return dir
}

func TestLoadDefaults(t *testing.T) {
	for key := range defaults {
		t.Setenv(key, "")
	}

	c, err := Load(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, Config{
		PIN:            "1234",
		OpeningBalance: "1000",
		Currency:       "USD",
		Environement:   "production",
		LogLevel:       "error",
	}, c)

	balance, err := c.Balance()
	require.NoError(t, err)
	require.True(t, balance.Equal(decimal.NewFromInt(1000)))
}

func TestLoadFile(t *testing.T) {
	dir := writeConfig(t, "ATM_PIN=4321\nATM_OPENING_BALANCE=250.50\nGO_ENV=development\nLOG_LEVEL=debug\n")

	c, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, "4321", c.PIN)
	require.Equal(t, "250.50", c.OpeningBalance)
	require.Equal(t, "USD", c.Currency)
	require.Equal(t, "development", c.Environement)
	require.Equal(t, "debug", c.LogLevel)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, "ATM_PIN=4321\n")
	t.Setenv("ATM_PIN", "8888")

	c, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, "8888", c.PIN)
}

func TestLoadInvalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{
			name:    "NonNumericPIN",
			content: "ATM_PIN=abcd\n",
		},
		{
			name:    "UnsupportedCurrency",
			content: "ATM_CURRENCY=RMB\n",
		},
		{
			name:    "BadBalance",
			content: "ATM_OPENING_BALANCE=lots\n",
		},
		{
			name:    "UnknownLogLevel",
			content: "LOG_LEVEL=loud\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))

			var ve validator.ValidationErrors
			if !errors.As(err, &ve) {
				t.Fatalf("Load() returned error: %v, want validation error", err)
			}
		})
	}
}

func TestLoadNegativeBalance(t *testing.T) {
	_, err := Load(writeConfig(t, "ATM_OPENING_BALANCE=-5\n"))
	require.ErrorIs(t, err, ErrNegativeBalance)
}
