package sample

import (
	"math"

	"github.com/Hillea/statsthinking21-core/internal/domain/random"
)

// Normal is a normal distribution parameterized by mean and standard
// deviation.
type Normal struct {
	Mean   float64
	StdDev float64
}

// NewNormal returns a Normal after validating its parameters: both must
// be finite and the standard deviation positive.
func NewNormal(mean, sd float64) (Normal, error) {
	d := Normal{Mean: mean, StdDev: sd}
	if err := d.validate(); err != nil {
		return Normal{}, err
	}
	return d, nil
}

func (d Normal) validate() error {
	if math.IsNaN(d.Mean) || math.IsInf(d.Mean, 0) {
		return ErrInvalidParameter
	}
	if math.IsNaN(d.StdDev) || math.IsInf(d.StdDev, 0) || d.StdDev <= 0 {
		return ErrInvalidParameter
	}
	return nil
}

// Draw produces k independent draws from the distribution. Parameters
// are re-validated so a hand-built zero value fails here rather than
// producing a degenerate sample.
func (d Normal) Draw(src *random.Source, k int) ([]float64, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, ErrNonPositiveCount
	}

	out := make([]float64, k)
	for i := range out {
		out[i] = d.Mean + d.StdDev*src.NormFloat64()
	}
	return out, nil
}
