package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and Config.Request() so
// callers can use errors.Is() for programmatic error handling.
var (
	// ErrNoInput is returned when no input file is given.
	// Use "-" to read from standard input.
	ErrNoInput = errors.New("no input specified: provide a file or use - for stdin")

	// ErrInvalidMode is returned when the table mode is not one of
	// true, false, enabled, disabled, brief or extend.
	ErrInvalidMode = errors.New("invalid mode: must be one of true, false, brief, extend")

	// ErrInvalidOutputFormat is returned when the serialized output format
	// is neither json nor yaml.
	ErrInvalidOutputFormat = errors.New("invalid output format: must be json or yaml")

	// ErrInvalidConcurrency is returned when the number of parallel input
	// reads is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrUnknownProfile is returned when --profile names a profile that is
	// not defined in the configuration file.
	ErrUnknownProfile = errors.New("unknown table profile")
)
