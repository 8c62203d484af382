// Package service provides the core business service that runs the
// configured simulation studies and collects their results.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Hillea/statsthinking21-core/internal/domain/model"
	"github.com/Hillea/statsthinking21-core/internal/domain/random"
	"github.com/Hillea/statsthinking21-core/internal/domain/study"
	"github.com/Hillea/statsthinking21-core/internal/domain/summary"
	"github.com/Hillea/statsthinking21-core/internal/domain/trial"
	"github.com/Hillea/statsthinking21-core/pkg/logger"
	"github.com/Hillea/statsthinking21-core/pkg/metrics"
	"github.com/google/uuid"
)

// Service runs simulation studies sequentially and keeps the results
// of the most recent run.
type Service struct {
	mu sync.RWMutex

	// Configuration
	seed    int64
	studies []study.Study

	// State
	results []model.Result

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSeed fixes the random seed for reproducible runs. Zero keeps the
// default behavior of deriving a fresh seed per run.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		s.seed = seed
	}
}

// WithStudies sets the studies to run, in order.
func WithStudies(studies ...study.Study) Option {
	return func(s *Service) {
		s.studies = studies
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		seed:   0,   // Derive a fresh seed per run
		logger: nil, // Will be replaced on the first run
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run executes every configured study in order and returns their
// results. Each study gets its own source seeded with the run seed, so
// a study's trial stream does not depend on which other studies run or
// in what order. The first failure aborts the run; no partial results
// are kept. The context is honored between studies.
func (s *Service) Run(ctx context.Context) ([]model.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.studies) == 0 {
		return nil, ErrNoStudies
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	seed := s.seed
	if seed == 0 {
		derived, err := random.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("derive run seed: %w", err)
		}
		seed = derived
		s.logger.Info(ctx, "derived run seed", logger.Int64("seed", seed))
	}
	metrics.UpdateRunSeed(seed)

	results := make([]model.Result, 0, len(s.studies))
	for _, st := range s.studies {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run aborted: %w", err)
		}

		res, err := s.runStudy(ctx, st, seed)
		if err != nil {
			metrics.RecordStudyFailure()
			return nil, fmt.Errorf("study %s: %w", st.Name(), err)
		}
		results = append(results, res)
	}

	s.results = results
	return results, nil
}

// runStudy executes one study against a freshly seeded source.
func (s *Service) runStudy(ctx context.Context, st study.Study, seed int64) (model.Result, error) {
	src := random.New(seed)
	runID := uuid.NewString()
	start := time.Now()

	s.logger.Info(ctx, "study starting",
		logger.String("study", st.Name()),
		logger.String("runID", runID),
		logger.Int64("seed", seed),
		logger.Int("repetitions", st.Repetitions()),
	)

	trials, err := trial.Run(st.Repetitions(), func() (float64, error) {
		return st.Trial(src)
	})
	if err != nil {
		metrics.RecordTrialFailure()
		return model.Result{}, err
	}

	desc, err := summary.Describe(trials)
	if err != nil {
		return model.Result{}, err
	}

	findings, err := st.Findings(trials)
	if err != nil {
		return model.Result{}, err
	}

	elapsed := time.Since(start)

	metrics.RecordTrials(st.Name(), trials)
	metrics.RecordStudyCompleted(st.Name(), elapsed)
	for _, f := range findings {
		metrics.RecordFinding(st.Name(), f.Label, f.Value)
	}

	s.logger.Info(ctx, "study complete",
		logger.String("study", st.Name()),
		logger.String("runID", runID),
		logger.Float64("mean", desc.Mean),
		logger.Float64("stddev", desc.StdDev),
		logger.Duration("elapsed", elapsed),
	)

	return model.Result{
		RunID:       runID,
		Study:       st.Name(),
		Seed:        seed,
		Repetitions: st.Repetitions(),
		Trials:      trials,
		Summary:     desc,
		Findings:    findings,
		Elapsed:     elapsed,
	}, nil
}

// Results returns the results of the most recent completed run.
func (s *Service) Results() []model.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.results
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"studies": len(s.studies),
		"results": len(s.results),
		"seed":    s.seed,
	}

	return stats
}
