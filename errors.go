package logenv

import (
	"errors"
)

var (
	// ErrInvalidArgument is returned when a required input (a map, a source, a logger name) is missing.
	ErrInvalidArgument = errors.New("logenv: invalid argument")

	// ErrConfiguration is returned when the property set cannot be produced for the consumer.
	// It is fatal: callers should not continue with a partial logging configuration.
	ErrConfiguration = errors.New("logenv: configuration failed")
)
