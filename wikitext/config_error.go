package wikitext

import (
	"fmt"
)

// ConfigError describes misuse of the package by the host, like an invalid [Dialect]
// or negative limits. Malformed markup never produces a ConfigError.
type ConfigError struct {
	Issue Issue // Issue is a kind or the problem occured.
	Err   error // Err contains original error created during some configuration process.
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Issue, e.Err)
}

// NewConfigError is a factory function for creating a *ConfigError.
func NewConfigError(issue Issue, err error) *ConfigError {
	return &ConfigError{
		Issue: issue,
		Err:   err,
	}
}
