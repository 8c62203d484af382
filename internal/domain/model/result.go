// Package model contains domain models passed between layers.
package model

import (
	"time"

	"github.com/Hillea/statsthinking21-core/internal/domain/summary"
)

// Finding is one headline statistic a study computes from its completed
// trial collection, e.g. the 99th percentile of the collected maxima.
type Finding struct {
	Label string
	Value float64
}

// Result captures one completed study run.
type Result struct {
	RunID       string          // unique id for this run
	Study       string          // study name
	Seed        int64           // seed the study's random source was built with
	Repetitions int             // number of trials driven
	Trials      []float64       // trial collection, in call order
	Summary     summary.Summary // whole-collection description
	Findings    []Finding       // study-specific headline statistics
	Elapsed     time.Duration   // wall-clock duration of the run
}
