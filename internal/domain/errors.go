package domain

import "errors"

// Sentinel errors for the data access contract - use with errors.Is().
// Every failure a repository or service returns wraps exactly one of these;
// anything that wraps none of them is treated as store unavailability and
// surfaced as an opaque 500.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrInvalidReference = errors.New("invalid reference")
)
