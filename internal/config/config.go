package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigdotenv"
	"github.com/cristalhq/aconfig/aconfigtoml"
)

// EnvPrefix is common prefix for all system-test environment variables.
const EnvPrefix = "ST"

// ErrHelpRequested is returned when usage help was requested via command line flags.
var ErrHelpRequested = errors.New("help requested")

type Config struct {
	Networking string `env:"NETWORKING" flag:"networking" usage:"Networking mode for system tests (cni)"`
	Log        LogConfig
}

// NetworkingMode returns raw networking mode value.
//
// Empty string means that value wasn't set.
func (cfg Config) NetworkingMode() (string, error) {
	return cfg.Networking, nil
}

// networkingEnv is a subset of Config which is read only from environment.
type networkingEnv struct {
	Networking string `env:"NETWORKING"`
}

// Load reads configuration from command line flags, environment and config file.
func Load() (*Config, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs is the same as Load but reads flags from passed arguments list.
func LoadArgs(args []string) (*Config, error) {
	cfg := new(Config)

	loader := aconfig.LoaderFor(cfg, aconfig.Config{
		EnvPrefix:          EnvPrefix,
		Args:               args,
		AllowUnknownFields: false,
		AllowUnknownEnvs:   true,
		AllowUnknownFlags:  false,
		FlagDelimiter:      "-",
		FailOnFileNotFound: false,
		FileFlag:           "config",
		FileDecoders: map[string]aconfig.FileDecoder{
			".conf": aconfigtoml.New(),
			".env":  aconfigdotenv.New(),
		},
	})

	if err := loader.Load(); err != nil {
		if isHelpError(err) {
			return nil, ErrHelpRequested
		}

		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, nil
}

// LookupNetworking reads networking mode from ST_NETWORKING environment variable.
//
// Flags and config files are ignored, as the value is consumed by test binaries.
func LookupNetworking() (string, error) {
	env := new(networkingEnv)
	loader := aconfig.LoaderFor(env, aconfig.Config{
		EnvPrefix:        EnvPrefix,
		SkipDefaults:     true,
		SkipFiles:        true,
		SkipFlags:        true,
		AllowUnknownEnvs: true,
	})

	if err := loader.Load(); err != nil {
		return "", fmt.Errorf("failed to read %s_NETWORKING: %w", EnvPrefix, err)
	}

	return env.Networking, nil
}

func isHelpError(err error) bool {
	if err == nil {
		return false
	}

	if u := errors.Unwrap(err); u != nil {
		err = u
	}

	return strings.HasSuffix(err.Error(), "help requested")
}
