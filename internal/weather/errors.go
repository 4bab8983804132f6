package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned when a provider that requires a key is
	// constructed without one.
	ErrMissingAPIKey = errors.New("api key is required")

	// ErrUnknownProvider is returned for an unregistered provider kind.
	ErrUnknownProvider = errors.New("unknown weather provider")
)

// ConfigError reports invalid provider configuration. It is only produced at
// construction time and is not recoverable at request time.
type ConfigError struct {
	Provider string
	Field    string
	Err      error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s provider: invalid %s: %v", e.Provider, e.Field, e.Err)
	}
	return fmt.Sprintf("%s provider: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
