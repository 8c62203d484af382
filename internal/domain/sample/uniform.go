package sample

import (
	"math"

	"github.com/Hillea/statsthinking21-core/internal/domain/random"
)

// Uniform is a continuous uniform distribution on [Min, Max).
type Uniform struct {
	Min float64
	Max float64
}

// NewUniform returns a Uniform after validating that both bounds are
// finite and Min < Max.
func NewUniform(min, max float64) (Uniform, error) {
	d := Uniform{Min: min, Max: max}
	if err := d.validate(); err != nil {
		return Uniform{}, err
	}
	return d, nil
}

func (d Uniform) validate() error {
	if math.IsNaN(d.Min) || math.IsInf(d.Min, 0) || math.IsNaN(d.Max) || math.IsInf(d.Max, 0) {
		return ErrInvalidParameter
	}
	if d.Min >= d.Max {
		return ErrInvalidParameter
	}
	return nil
}

// Draw produces k independent draws from the distribution.
func (d Uniform) Draw(src *random.Source, k int) ([]float64, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, ErrNonPositiveCount
	}

	out := make([]float64, k)
	for i := range out {
		out[i] = d.Min + (d.Max-d.Min)*src.Float64()
	}
	return out, nil
}
