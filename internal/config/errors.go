package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCloudName indicates that neither the host config nor the
	// module options provide a non-empty cloudName.
	ErrMissingCloudName = errors.New("cloudName is required")
	// ErrUnsupportedConfigFormat indicates a host config file whose extension
	// is not one of .yaml, .yml, .toml, .json or .jsonc.
	ErrUnsupportedConfigFormat = errors.New("unsupported config format")
	// ErrInvalidHostConfig indicates a host config file that could be read
	// but whose cloudinary namespace has the wrong shape.
	ErrInvalidHostConfig = errors.New("invalid host configuration")
	// ErrInvalidFlagOption indicates a malformed --option key=value pair.
	ErrInvalidFlagOption = errors.New("invalid option flag")
)

// ConfigurationError is the fatal outcome of [Resolver.Resolve]. It names
// the field that stopped resolution. Setup must not register anything when
// it receives one.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error on %q: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
