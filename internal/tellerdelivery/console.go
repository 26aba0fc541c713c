// Package tellerdelivery manages console delivery layer of the teller.
package tellerdelivery

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/internal/tellerservice"
	"github.com/go-petr/pet-atm/pkg/currencypkg"
)

// Service provides service layer interface needed by teller delivery layer.
//
//go:generate mockgen -source console.go -destination console_mock.go -package tellerdelivery
type Service interface {
	Authenticate(ctx context.Context, acc tellerservice.Account, pin string) error
	Withdraw(ctx context.Context, acc tellerservice.Account, amount string) (domain.Transaction, error)
	Deposit(ctx context.Context, acc tellerservice.Account, amount string) (domain.Transaction, error)
	Balance(ctx context.Context, acc tellerservice.Account) decimal.Decimal
	History(ctx context.Context, acc tellerservice.Account) []domain.Transaction
	Rates(ctx context.Context) []currencypkg.Rate
}

type choice int

// Menu options in the order they are printed.
const (
	choiceWithdraw choice = iota + 1
	choiceDeposit
	choiceBalance
	choiceHistory
	choiceRates
	choiceExit
)

const menu = "1. Withdraw\n2. Deposit\n3. Check Balance\n4. View Transactions\n5. Exchange Rates\n6. Exit"

// Console messages.
const (
	msgEnterPIN          = "Enter PIN: "
	msgChooseOption      = "Choose an option: "
	msgEnterAmount       = "Enter amount: "
	msgInvalidPIN        = "Invalid PIN."
	msgInvalidInput      = "Invalid input. Try again."
	msgInvalidChoice     = "Invalid choice. Try again."
	msgInsufficientFunds = "Insufficient funds."
	msgNegativeAmount    = "Amount must be positive."
	msgWithdrawal        = "Withdrawal successful."
	msgDeposit           = "Deposit successful."
	msgHistory           = "Transaction History:"
	msgGoodbye           = "Goodbye!"
)

var errEndOfInput = errors.New("end of input")

// Handler facilitates console delivery layer logic.
type Handler struct {
	service Service
	in      *bufio.Scanner
	out     io.Writer
	lines   chan string
	readErr error // set before lines is closed
}

// NewHandler returns console handler reading commands from in and printing to out.
func NewHandler(s Service, in io.Reader, out io.Writer) *Handler {
	return &Handler{
		service: s,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run runs one session against the account: PIN check and then the menu loop
// until the user exits or the input ends.
func (h *Handler) Run(ctx context.Context, acc tellerservice.Account) error {
	l := zerolog.Ctx(ctx)

	done := make(chan struct{})
	defer close(done)

	h.lines = make(chan string)
	go h.scan(done)

	pin, err := h.readNumber(ctx, msgEnterPIN)
	if err != nil {
		return h.finish(ctx, err)
	}

	if err := h.service.Authenticate(ctx, acc, pin); err != nil {
		l.Info().Err(err).Msg("authentication failed")
		h.println(msgInvalidPIN)

		return nil
	}

	l.Info().Msg("session authenticated")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		h.println(menu)

		raw, err := h.readNumber(ctx, msgChooseOption)
		if err != nil {
			return h.finish(ctx, err)
		}

		c, _ := strconv.Atoi(raw)

		if err := h.dispatch(ctx, acc, choice(c)); err != nil {
			return h.finish(ctx, err)
		}

		if choice(c) == choiceExit {
			l.Info().Msg("session closed")
			return nil
		}
	}
}

func (h *Handler) dispatch(ctx context.Context, acc tellerservice.Account, c choice) error {
	switch c {
	case choiceWithdraw:
		return h.withAmount(ctx, func(amount string) error {
			_, err := h.service.Withdraw(ctx, acc, amount)
			return err
		}, msgWithdrawal)
	case choiceDeposit:
		return h.withAmount(ctx, func(amount string) error {
			_, err := h.service.Deposit(ctx, acc, amount)
			return err
		}, msgDeposit)
	case choiceBalance:
		h.println("Balance: " + h.service.Balance(ctx, acc).String())
	case choiceHistory:
		h.println(msgHistory)

		for _, t := range h.service.History(ctx, acc) {
			h.println(t.Describe())
		}
	case choiceRates:
		for _, r := range h.service.Rates(ctx) {
			h.println(r.Code + ": " + r.Rate.String())
		}
	case choiceExit:
		h.println(msgGoodbye)
	default:
		zerolog.Ctx(ctx).Info().Int("choice", int(c)).Err(domain.ErrInvalidChoice).Send()
		h.println(msgInvalidChoice)
	}

	return nil
}

// withAmount prompts for an amount until op accepts or rejects it for a reason
// other than unparsable input.
func (h *Handler) withAmount(ctx context.Context, op func(amount string) error, success string) error {
	for {
		amount, err := h.readLine(ctx, msgEnterAmount)
		if err != nil {
			return err
		}

		err = op(amount)

		switch {
		case err == nil:
			h.println(success)
		case errors.Is(err, domain.ErrInvalidAmount):
			h.println(msgInvalidInput)
			continue
		case errors.Is(err, domain.ErrNegativeAmount):
			h.println(msgNegativeAmount)
		case errors.Is(err, domain.ErrInsufficientFunds):
			h.println(msgInsufficientFunds)
		default:
			return err
		}

		return nil
	}
}

// readNumber prompts until the user enters an integer and returns it as typed.
func (h *Handler) readNumber(ctx context.Context, prompt string) (string, error) {
	for {
		line, err := h.readLine(ctx, prompt)
		if err != nil {
			return "", err
		}

		if _, err := strconv.Atoi(line); err == nil {
			return line, nil
		}

		h.println(msgInvalidInput)
	}
}

// scan feeds input lines to readLine so a blocked read never outlives a cancelled context.
func (h *Handler) scan(done <-chan struct{}) {
	defer close(h.lines)

	for h.in.Scan() {
		select {
		case h.lines <- h.in.Text():
		case <-done:
			return
		}
	}

	h.readErr = h.in.Err()
}

func (h *Handler) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(h.out, prompt)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-h.lines:
		if !ok {
			if h.readErr != nil {
				return "", fmt.Errorf("cannot read input: %w", h.readErr)
			}

			return "", errEndOfInput
		}

		return strings.TrimSpace(line), nil
	}
}

func (h *Handler) println(s string) {
	fmt.Fprintln(h.out, s)
}

// finish treats the end of input as a quiet exit.
func (h *Handler) finish(ctx context.Context, err error) error {
	if errors.Is(err, errEndOfInput) {
		h.println("")
		zerolog.Ctx(ctx).Info().Msg("input closed")

		return nil
	}

	return err
}
