package config

import "errors"

// Validation errors returned by Config.Validate. Callers match them with
// errors.Is.
var (
	// ErrInvalidTimeout is returned when the request timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidDelay is returned when the delay between pages is negative.
	// Use 0 to disable the pause.
	ErrInvalidDelay = errors.New("invalid delay: must be non-negative")

	// ErrInvalidWorkers is returned when fewer than one worker is configured.
	ErrInvalidWorkers = errors.New("invalid workers: must be at least 1")

	// ErrUnknownFetcher is returned for a fetcher name other than FetcherResty
	// or FetcherColly.
	ErrUnknownFetcher = errors.New("unknown fetcher")
)

// ErrConfigNotFound is returned when an explicitly requested configuration
// file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")
