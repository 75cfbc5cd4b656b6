package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

type LogConfig struct {
	Level string `env:"LEVEL" flag:"level" default:"info" usage:"Log level (debug,info,warn,error)"`
	File  string `env:"FILE" flag:"file" usage:"Log file path"`
}

// NewLogger builds application logger.
//
// Console output goes to stderr, stdout is reserved for command results.
func (cfg LogConfig) NewLogger() (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	conWriter := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})
	if cfg.File == "" {
		return buildLogger(level, conWriter), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("failed to create log file: %w", err)
	}

	w := io.MultiWriter(conWriter, f)
	return buildLogger(level, w), f, nil
}

func buildLogger(level zerolog.Level, writer io.Writer) zerolog.Logger {
	return zerolog.New(writer).Level(level).With().Str("context", "app").Timestamp().Logger()
}
