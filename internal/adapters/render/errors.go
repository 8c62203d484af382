package render

import "errors"

// Sentinel kinds for render errors.
var (
	// ErrNoValues indicates there were no values to render.
	ErrNoValues = errors.New("no values to render")

	// ErrNonPositiveBins indicates the requested bin count was not positive.
	ErrNonPositiveBins = errors.New("bin count must be positive")
)
