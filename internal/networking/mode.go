package networking

import (
	"errors"
	"fmt"
)

// EnvNetworking is environment variable which selects networking mode.
const EnvNetworking = "ST_NETWORKING"

// Mode is system-test networking backend.
type Mode string

// NetworkingCNI is CNI networking mode, the only one currently supported.
const NetworkingCNI Mode = "cni"

// DefaultMode is used when networking mode isn't configured.
const DefaultMode = NetworkingCNI

// ErrUnsupportedMode is returned when networking mode is not supported.
var ErrUnsupportedMode = errors.New("unsupported networking mode")

// SupportedModes returns list of supported networking modes.
func SupportedModes() []Mode {
	return []Mode{NetworkingCNI}
}

// IsSupported reports whether networking mode is supported.
func (m Mode) IsSupported() bool {
	for _, v := range SupportedModes() {
		if v == m {
			return true
		}
	}

	return false
}

func (m Mode) String() string {
	return string(m)
}

// ValidationError is returned when test environment is configured with unsupported networking mode.
type ValidationError struct {
	// Variable is environment variable or config key name.
	Variable string

	// Value is rejected value.
	Value string
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf(
		"%s: %q is set to %q (supported: %s)",
		ErrUnsupportedMode, err.Variable, err.Value, NetworkingCNI,
	)
}

func (err *ValidationError) Unwrap() error {
	return ErrUnsupportedMode
}

// ParseMode validates raw networking mode value.
//
// Empty value resolves to DefaultMode. Value is compared as-is.
func ParseMode(value string) (Mode, error) {
	if value == "" {
		return DefaultMode, nil
	}

	mode := Mode(value)
	if !mode.IsSupported() {
		return "", &ValidationError{
			Variable: EnvNetworking,
			Value:    value,
		}
	}

	return mode, nil
}
