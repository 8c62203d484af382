package study

import (
	"fmt"
	"math"

	"github.com/Hillea/statsthinking21-core/internal/domain/model"
	"github.com/Hillea/statsthinking21-core/internal/domain/random"
	"github.com/Hillea/statsthinking21-core/internal/domain/sample"
	"github.com/Hillea/statsthinking21-core/internal/domain/summary"
	"github.com/Hillea/statsthinking21-core/internal/domain/trial"
)

// Default bootstrap study configuration constants.
const (
	defaultBootstrapReps = 2500
)

// BootstrapOption applies a configuration option to a BootstrapMean study.
type BootstrapOption func(*BootstrapMean)

// WithBootstrapRepetitions sets the number of resampling rounds.
func WithBootstrapRepetitions(reps int) BootstrapOption {
	return func(s *BootstrapMean) { s.reps = reps }
}

// WithBootstrapResampleSize sets the size of each resample. Zero keeps
// the default of resampling as many values as the dataset holds.
func WithBootstrapResampleSize(size int) BootstrapOption {
	return func(s *BootstrapMean) { s.size = size }
}

// BootstrapMean estimates the sampling distribution of the mean by
// resampling an observed dataset with replacement. One trial resamples
// the dataset and reports the resample mean; the spread of the
// collected means approximates the standard error of the mean.
type BootstrapMean struct {
	data []float64
	size int
	reps int
}

// NewBootstrapMean creates the study over an observed dataset. The
// dataset is copied, so later mutation of the caller's slice does not
// change the study.
func NewBootstrapMean(data []float64, opts ...BootstrapOption) (*BootstrapMean, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("bootstrap study: %w", sample.ErrEmptyDataset)
	}
	if len(data) == 1 {
		return nil, fmt.Errorf("bootstrap study: %w", summary.ErrTooFewValues)
	}

	s := &BootstrapMean{
		data: append([]float64(nil), data...),
		reps: defaultBootstrapReps,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	if s.size == 0 {
		s.size = len(s.data)
	}
	if s.size < 0 {
		return nil, fmt.Errorf("bootstrap study: resample size: %w", sample.ErrNonPositiveCount)
	}
	if s.reps <= 0 {
		return nil, fmt.Errorf("bootstrap study: repetitions: %w", trial.ErrNonPositiveCount)
	}
	return s, nil
}

// Name identifies the study in logs, metrics, and reports.
func (s *BootstrapMean) Name() string { return "bootstrap-mean" }

// Repetitions returns the configured resampling round count.
func (s *BootstrapMean) Repetitions() int { return s.reps }

// Trial resamples the dataset with replacement and returns the
// resample mean.
func (s *BootstrapMean) Trial(src *random.Source) (float64, error) {
	resample, err := sample.WithReplacement(src, s.data, s.size)
	if err != nil {
		return 0, err
	}
	return summary.Mean(resample)
}

// Findings reports the bootstrap standard error next to the analytic
// standard error of the mean for the resample size, and their ratio.
func (s *BootstrapMean) Findings(trials []float64) ([]model.Finding, error) {
	se, err := summary.StdDev(trials)
	if err != nil {
		return nil, fmt.Errorf("bootstrap study: %w", err)
	}
	sd, err := summary.StdDev(s.data)
	if err != nil {
		return nil, fmt.Errorf("bootstrap study: %w", err)
	}
	sem := sd / math.Sqrt(float64(s.size))

	findings := []model.Finding{
		{Label: "bootstrap_se", Value: se},
		{Label: "analytic_sem", Value: sem},
	}
	if sem != 0 {
		findings = append(findings, model.Finding{Label: "se_ratio", Value: se / sem})
	}
	return findings, nil
}
