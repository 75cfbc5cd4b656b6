package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/x1unix/calico-st/internal/config"
	"github.com/x1unix/calico-st/internal/networking"
)

func main() {
	cfg, err := config.Load()
	if errors.Is(err, config.ErrHelpRequested) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger, closer, err := cfg.Log.NewLogger()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize logger")
	}

	log.Logger = logger
	os.Exit(finish(logger, closer, run(logger, cfg, os.Stdout)))
}

// finish reports run error and closes log file afterwards, so the error reaches it.
func finish(logger zerolog.Logger, closer io.Closer, err error) int {
	if err != nil {
		logger.Error().Err(err).Msg("unsupported test environment")
	}

	_ = closer.Close()
	if err != nil {
		return 1
	}

	return 0
}

func run(logger zerolog.Logger, cfg *config.Config, out io.Writer) error {
	resolver := networking.NewResolver(logger, cfg.NetworkingMode)
	mode, err := resolver.Mode()
	if err != nil {
		return err
	}

	logger.Info().
		Stringer("mode", mode).
		Msg("networking mode resolved")
	_, err = fmt.Fprintln(out, mode)
	return err
}
