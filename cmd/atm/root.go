package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/go-petr/pet-atm/internal/accountrepo"
	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/internal/tellerdelivery"
	"github.com/go-petr/pet-atm/internal/tellerservice"
	"github.com/go-petr/pet-atm/pkg/configpkg"
	"github.com/go-petr/pet-atm/pkg/currencypkg"
	"github.com/go-petr/pet-atm/pkg/logpkg"
	"github.com/go-petr/pet-atm/pkg/passpkg"
)

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:   "atm",
		Short: "Console teller for a single PIN protected account",
		Long: `atm simulates an automated teller on the console.

After the PIN check it offers withdrawals, deposits, balance inquiry,
transaction history and exchange rates. Nothing is kept after exit.

Settings are read from atm.env in the config directory and from
environment variables: ATM_PIN, ATM_OPENING_BALANCE, ATM_CURRENCY,
GO_ENV, LOG_LEVEL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configDir, in, out)
		},
	}

	cmd.Flags().StringVar(&configDir, "config-dir", "./configs", "directory with atm.env")

	return cmd
}

func run(ctx context.Context, configDir string, in io.Reader, out io.Writer) error {
	config, err := configpkg.Load(configDir)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}

	logger := logpkg.New(config)

	balance, err := config.Balance()
	if err != nil {
		return err
	}

	pin, err := domain.NormalizePIN(config.PIN)
	if err != nil {
		return fmt.Errorf("invalid configured PIN: %w", err)
	}

	hashedPIN, err := passpkg.Hash(pin)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}

	ctx, sessionID := logpkg.WithSession(ctx, logger)

	account := accountrepo.NewRepoMem(hashedPIN, balance, config.Currency)
	service := tellerservice.New(currencypkg.NewDefaultTable())
	handler := tellerdelivery.NewHandler(service, in, out)

	logger.Info().Str("session_id", sessionID).Msg("TELLER SESSION HAS STARTED")

	return handler.Run(ctx, account)
}
