package service

import "errors"

// Sentinel kinds for service errors.
var (
	// ErrNoStudies indicates the service was asked to run without any studies.
	ErrNoStudies = errors.New("no studies configured")
)
