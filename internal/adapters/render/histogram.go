// Package render turns finished simulation results into plain-text
// reports. Rendering stays on the output side: it consumes result
// values and never influences how trials are run or summarized.
package render

import (
	"fmt"
	"io"
	"strings"
)

// barWidth is the character width of the longest histogram bar.
const barWidth = 50

// Histogram is a fixed-width binning of a value collection. Every bin
// is half-open except the last, which also includes the maximum so no
// value falls off the top edge.
type Histogram struct {
	Min    float64
	Max    float64
	Width  float64
	Counts []int
}

// NewHistogram bins the values into the requested number of
// equal-width bins. When every value is identical the histogram
// collapses to a single bin holding all of them.
func NewHistogram(values []float64, bins int) (*Histogram, error) {
	if len(values) == 0 {
		return nil, ErrNoValues
	}
	if bins <= 0 {
		return nil, ErrNonPositiveBins
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if min == max {
		return &Histogram{Min: min, Max: max, Counts: []int{len(values)}}, nil
	}

	width := (max - min) / float64(bins)
	counts := make([]int, bins)
	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	return &Histogram{Min: min, Max: max, Width: width, Counts: counts}, nil
}

// Render writes one line per bin with its edges, count, and a bar
// scaled against the fullest bin.
func (h *Histogram) Render(w io.Writer) error {
	peak := 0
	for _, c := range h.Counts {
		if c > peak {
			peak = c
		}
	}

	for i, c := range h.Counts {
		lo := h.Min + float64(i)*h.Width
		hi := lo + h.Width

		edge := ")"
		if i == len(h.Counts)-1 {
			hi = h.Max
			edge = "]"
		}

		bar := ""
		if peak > 0 {
			bar = strings.Repeat("#", c*barWidth/peak)
		}

		if _, err := fmt.Fprintf(w, "  [%10.4f, %10.4f%s %6d %s\n", lo, hi, edge, c, bar); err != nil {
			return fmt.Errorf("write histogram row: %w", err)
		}
	}
	return nil
}
