package networking

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Source returns raw networking mode value.
//
// Empty string means that value is not set.
type Source func() (string, error)

// StaticSource returns a source which always returns passed value.
func StaticSource(value string) Source {
	return func() (string, error) {
		return value, nil
	}
}

// Resolver resolves networking mode once and caches the result.
//
// Result of the first call, including an error, is returned by all subsequent calls.
type Resolver struct {
	log    zerolog.Logger
	source Source

	once sync.Once
	mode Mode
	err  error
}

// NewResolver returns a new networking mode resolver which reads value from source.
func NewResolver(logger zerolog.Logger, source Source) *Resolver {
	return &Resolver{
		log:    logger.With().Str("context", "networking").Logger(),
		source: source,
	}
}

// Mode returns networking mode.
//
// Source is read and validated only on first call.
func (r *Resolver) Mode() (Mode, error) {
	r.once.Do(func() {
		r.mode, r.err = r.resolve()
	})

	return r.mode, r.err
}

// MustMode is the same as Mode but panics if test environment is misconfigured.
func (r *Resolver) MustMode() Mode {
	mode, err := r.Mode()
	if err != nil {
		panic(err)
	}

	return mode
}

func (r *Resolver) resolve() (Mode, error) {
	value, err := r.source()
	if err != nil {
		return "", fmt.Errorf("failed to read networking mode: %w", err)
	}

	if value == "" {
		r.log.Debug().
			Stringer("mode", DefaultMode).
			Msgf("%s is not set, using default networking mode", EnvNetworking)
	}

	mode, err := ParseMode(value)
	if err != nil {
		return "", err
	}

	r.log.Debug().Stringer("mode", mode).Msg("networking mode resolved")
	return mode, nil
}
