package config

import "errors"

// Validation errors returned by Config.Validate.
var (
	ErrInvalidListenAddress = errors.New("invalid listen address: must not be empty")
	ErrInvalidMaxUploadSize = errors.New("invalid max upload size: must be positive")
	ErrInvalidMaxRows       = errors.New("invalid max rows: must be non-negative")
	ErrInvalidSessionCookie = errors.New("invalid session cookie name: must not be empty")
	ErrInvalidSessionTTL    = errors.New("invalid session ttl: must not be negative")
	ErrMissingProfileName   = errors.New("profile name is required")
	ErrInvalidEmail         = errors.New("profile email is not a valid address")
	ErrInvalidPlotSize      = errors.New("invalid plot size: width 200-4000, height 150-4000, dot width 0-20")
)
