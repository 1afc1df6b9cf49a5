package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = errors.New("invalid workers: must be positive")

	// ErrInvalidTimeout is returned when the timeout is negative.
	// Zero disables the timeout.
	ErrInvalidTimeout = errors.New("invalid timeout: must be non-negative")

	// ErrInvalidDays is returned when the number of days is negative.
	ErrInvalidDays = errors.New("invalid days: must be non-negative")

	// ErrConflictingBounds is returned when both --until and --days are set.
	ErrConflictingBounds = errors.New("conflicting date bounds: --until and --days cannot be used together")

	// ErrUntilInFuture is returned when the lower bound is after today, which
	// would process no dates at all.
	ErrUntilInFuture = errors.New("invalid until date: must not be after today")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrInvalidBaseURL is returned when the site base URL is not an
	// absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("invalid base URL: must be an absolute http or https URL")

	// ErrInvalidTemplate is returned when a URL template lacks a required
	// placeholder.
	ErrInvalidTemplate = errors.New("invalid URL template")
)
