package summary

import (
	"errors"
)

// Sentinel kinds for summary errors.
var (
	ErrEmptyCollection    = errors.New("collection must not be empty")
	ErrTooFewValues       = errors.New("collection must hold at least two values")
	ErrInvalidProbability = errors.New("probability must lie in (0, 1)")
)
