package sample

import (
	"errors"
)

// Sentinel kinds for sampling errors.
var (
	ErrEmptyDataset     = errors.New("dataset must not be empty")
	ErrNonPositiveCount = errors.New("draw count must be positive")
	ErrInvalidParameter = errors.New("distribution parameter out of domain")
)
