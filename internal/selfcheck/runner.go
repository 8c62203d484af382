package selfcheck

import (
	"context"
	"fmt"
	"time"

	"github.com/Hillea/statsthinking21-core/internal/domain/random"
	"github.com/Hillea/statsthinking21-core/pkg/logger"
)

// Run executes the complete simulation self-check.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	if config.Seed == 0 {
		seed, err := random.NewSeed()
		if err != nil {
			return fmt.Errorf("seed derivation failed: %w", err)
		}
		config.Seed = seed
	}

	logger.Get().Info(ctx, "starting simulation self-check",
		logger.Int64("seed", config.Seed),
		logger.String("timeout", config.Timeout.String()),
		logger.String("logFile", config.LogFile),
		logger.Any("verbose", config.Verbose))

	// Step 1: Resampling behavior
	if err := checkResampling(config, stats); err != nil {
		return fmt.Errorf("resampling checks failed: %w", err)
	}

	// Step 2: Repetition driver
	if err := checkRepetitionDriver(config, stats); err != nil {
		return fmt.Errorf("repetition driver checks failed: %w", err)
	}

	// Step 3: Summary statistics
	if err := checkSummaries(config, stats); err != nil {
		return fmt.Errorf("summary checks failed: %w", err)
	}

	// Step 4: Extreme-value study
	if err := checkExtremeValues(ctx, config, stats); err != nil {
		return fmt.Errorf("extreme-value study checks failed: %w", err)
	}

	// Step 5: Bootstrap study
	if err := checkBootstrap(ctx, config, stats); err != nil {
		return fmt.Errorf("bootstrap study checks failed: %w", err)
	}

	// Step 6: Cross-run reproducibility
	if err := checkReproducibility(ctx, config, stats); err != nil {
		return fmt.Errorf("reproducibility checks failed: %w", err)
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "self-check completed successfully")
	return nil
}

// displayFinalStats prints the final self-check statistics.
func displayFinalStats(stats *Stats) {
	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("checksRun", stats.ChecksRun),
		logger.Int("checksPassed", stats.ChecksPassed),
		logger.Int("checksFailed", stats.ChecksFailed),
		logger.String("duration", stats.Duration.String()))
}
