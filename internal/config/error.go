package config

import "errors"

// Error definitions for the config package.
var (
	ErrInvalidConfig = errors.New("config does not match schema")
)
