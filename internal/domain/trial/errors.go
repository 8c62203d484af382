package trial

import (
	"errors"
)

// Sentinel kinds for repetition driver errors.
var (
	ErrNonPositiveCount = errors.New("repetition count must be positive")
	ErrNilTrial         = errors.New("trial function must not be nil")
)
