package config

import "errors"

// ErrMissingField indicates required configuration was absent.
var ErrMissingField = errors.New("missing configuration field")

// ErrInvalidField indicates a configuration value failed validation.
var ErrInvalidField = errors.New("invalid configuration field")
