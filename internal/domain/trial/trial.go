// Package trial provides the repetition driver: run one trial function
// R times and collect the R scalar results.
package trial

import (
	"fmt"
)

// Func is a single trial. It draws one sample and reduces it to the
// trial's scalar statistic.
type Func func() (float64, error)

// Run invokes fn repetitions times and returns the collected results in
// call order. The first trial error aborts the run and is returned
// wrapped with its 1-based repetition index; no partial collection is
// returned. No aggregation happens here.
func Run(repetitions int, fn Func) ([]float64, error) {
	if repetitions <= 0 {
		return nil, ErrNonPositiveCount
	}
	if fn == nil {
		return nil, ErrNilTrial
	}

	out := make([]float64, 0, repetitions)
	for i := 0; i < repetitions; i++ {
		v, err := fn()
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}
