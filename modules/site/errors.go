package site

import "errors"

var (
	// ErrNotFound is returned by a Resolver when no asset exists at a path.
	ErrNotFound = errors.New("asset not found")

	ErrInvalidConfig      = errors.New("invalid static site configuration")
	ErrFailedToLoadConfig = errors.New("failed to load AWS configuration")
	ErrAccessDenied       = errors.New("access denied")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
)
