package powrewrite

import "errors"

// Common errors used throughout the powrewrite package
var (
	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")
)
