// Package study defines the repeated-sampling demonstrations the
// toolkit ships: each Study owns its trial logic and the headline
// statistics it reports from a completed trial collection.
//
// Studies are stateless with respect to randomness: the random source
// is passed into every Trial call, so the same study value can be run
// any number of times, each run owning its own seeded source.
package study

import (
	"github.com/Hillea/statsthinking21-core/internal/domain/model"
	"github.com/Hillea/statsthinking21-core/internal/domain/random"
)

// Study is a named, repeatable sampling demonstration. Trial draws one
// sample and reduces it to a scalar; Findings computes the study's
// headline statistics from the completed trial collection.
type Study interface {
	Name() string
	Repetitions() int
	Trial(src *random.Source) (float64, error)
	Findings(trials []float64) ([]model.Finding, error)
}
