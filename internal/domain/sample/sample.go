// Package sample implements the sampling operations of the simulation
// core: resampling an observed dataset with replacement (the bootstrap
// primitive) and drawing from parametric distributions.
//
// Every operation takes an explicit *random.Source, so a fixed seed
// replays the exact draw sequence. Inputs are never mutated; outputs are
// freshly allocated.
package sample

import (
	"github.com/Hillea/statsthinking21-core/internal/domain/random"
)

// WithReplacement draws k values uniformly at random from data, with
// replacement: any original element may appear zero, one, or many times
// in the output. k may equal len(data) (the standard bootstrap case) or
// differ from it.
func WithReplacement(src *random.Source, data []float64, k int) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}
	if k <= 0 {
		return nil, ErrNonPositiveCount
	}

	out := make([]float64, k)
	for i := range out {
		out[i] = data[src.Intn(len(data))]
	}
	return out, nil
}
