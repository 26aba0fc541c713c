// Package main runs the console teller for a single account.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		log.Error().Err(err).Msg("teller stopped")
		os.Exit(1)
	}
}
