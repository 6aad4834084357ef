package bsearch

import "errors"

// Sentinel errors for binary search operations.
var (
	// ErrEmptyInput indicates the operation needs at least one element.
	ErrEmptyInput = errors.New("bsearch: input must be non-empty")

	// ErrNegativeInput indicates a negative argument where only x >= 0 is defined.
	ErrNegativeInput = errors.New("bsearch: input must be non-negative")
)

// NotFound is returned by index-producing searches when the target is absent.
const NotFound = -1
