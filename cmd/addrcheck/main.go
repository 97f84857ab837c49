package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dukerupert/addrcheck/internal"
	"github.com/dukerupert/addrcheck/internal/address"
	"github.com/dukerupert/addrcheck/internal/domain"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stderr, cfg.Env, cfg.LogLevel)

	logger.Info().Str("path", cfg.AddressFile).Msg("Loading address book")
	book, err := address.Load(cfg.AddressFile)
	if err != nil {
		logger.Error().
			Str("code", domain.ErrorCode(err)).
			Err(err).
			Msg("Address book load failed")
		return fmt.Errorf("address book load failed: %s", domain.ErrorMessage(err))
	}
	logger.Info().Int("count", len(book.Addresses)).Msg("Address book loaded")

	// Pretty-print every address, one per line
	book.Print(os.Stdout)

	// Report validation failures
	failures := book.ValidateAll()
	for _, line := range failures {
		logger.Warn().Msg(line)
	}
	logger.Info().
		Int("invalid", len(failures)).
		Int("total", len(book.Addresses)).
		Msg("Validation complete")

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
