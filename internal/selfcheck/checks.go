package selfcheck

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	service "github.com/Hillea/statsthinking21-core/internal/app"
	appconfig "github.com/Hillea/statsthinking21-core/internal/config"
	"github.com/Hillea/statsthinking21-core/internal/domain/model"
	"github.com/Hillea/statsthinking21-core/internal/domain/random"
	"github.com/Hillea/statsthinking21-core/internal/domain/sample"
	"github.com/Hillea/statsthinking21-core/internal/domain/study"
	"github.com/Hillea/statsthinking21-core/internal/domain/summary"
	"github.com/Hillea/statsthinking21-core/internal/domain/trial"
)

// pass records a successful check.
func pass(stats *Stats) {
	stats.ChecksRun++
	stats.ChecksPassed++
}

// fail records a failed check and hands the error back.
func fail(stats *Stats, err error) error {
	stats.ChecksRun++
	stats.ChecksFailed++
	return err
}

// checkResampling verifies resampling with replacement against a known
// dataset: every drawn value must come from the dataset, requested
// sizes must be honored, and identical seeds must replay identically.
func checkResampling(config *Config, stats *Stats) error {
	log.Println("🔍 Checking resampling with replacement...")

	data := []float64{3.1, 4.1, 5.9, 2.6, 5.3, 5.8, 9.7, 9.3}
	members := make(map[float64]bool, len(data))
	for _, v := range data {
		members[v] = true
	}

	src := random.New(config.Seed)
	for _, k := range []int{len(data), 3, 64} {
		resample, err := sample.WithReplacement(src, data, k)
		if err != nil {
			return fail(stats, fmt.Errorf("resample k=%d: %w", k, err))
		}
		if len(resample) != k {
			return fail(stats, fmt.Errorf("resample k=%d returned %d values", k, len(resample)))
		}
		for _, v := range resample {
			if !members[v] {
				return fail(stats, fmt.Errorf("resample k=%d produced foreign value %v", k, v))
			}
		}
	}

	first, err := sample.WithReplacement(random.New(11), data, 16)
	if err != nil {
		return fail(stats, err)
	}
	second, err := sample.WithReplacement(random.New(11), data, 16)
	if err != nil {
		return fail(stats, err)
	}
	for i := range first {
		if first[i] != second[i] {
			return fail(stats, fmt.Errorf("identically seeded resamples diverged at index %d", i))
		}
	}

	pass(stats)
	log.Println("✅ Resampling checks passed")
	return nil
}

// checkRepetitionDriver verifies the trial loop: full collections on
// success, and a hard stop on the first failure.
func checkRepetitionDriver(config *Config, stats *Stats) error {
	log.Println("🔍 Checking the repetition driver...")

	src := random.New(config.Seed)
	calls := 0
	out, err := trial.Run(500, func() (float64, error) {
		calls++
		return src.Float64(), nil
	})
	if err != nil {
		return fail(stats, err)
	}
	if len(out) != 500 || calls != 500 {
		return fail(stats, fmt.Errorf("driver ran %d trials and kept %d values, want 500", calls, len(out)))
	}

	boom := errors.New("synthetic failure")
	calls = 0
	_, err = trial.Run(100, func() (float64, error) {
		calls++
		if calls == 7 {
			return 0, boom
		}
		return 1, nil
	})
	if !errors.Is(err, boom) {
		return fail(stats, fmt.Errorf("driver did not propagate the trial failure, got: %v", err))
	}
	if calls != 7 {
		return fail(stats, fmt.Errorf("driver kept calling after a failure: %d calls", calls))
	}

	pass(stats)
	log.Println("✅ Repetition driver checks passed")
	return nil
}

// checkSummaries verifies the summary statistics against hand-computed
// values and structural properties.
func checkSummaries(config *Config, stats *Stats) error {
	log.Println("🔍 Checking summary statistics...")

	median, err := summary.Quantile([]float64{5, 1, 3, 2, 4}, 0.5)
	if err != nil {
		return fail(stats, err)
	}
	if median != 3 {
		return fail(stats, fmt.Errorf("odd-length median: got %v, want 3", median))
	}

	median, err = summary.Quantile([]float64{1, 2, 3, 4}, 0.5)
	if err != nil {
		return fail(stats, err)
	}
	if median != 2.5 {
		return fail(stats, fmt.Errorf("even-length median: got %v, want 2.5", median))
	}

	// Quantiles must not decrease as p grows.
	dist, err := sample.NewNormal(0, 1)
	if err != nil {
		return fail(stats, err)
	}
	values, err := dist.Draw(random.New(config.Seed), 400)
	if err != nil {
		return fail(stats, err)
	}
	prev := math.Inf(-1)
	for i := 1; i < 20; i++ {
		p := float64(i) * 0.05
		q, err := summary.Quantile(values, p)
		if err != nil {
			return fail(stats, fmt.Errorf("quantile p=%.2f: %w", p, err))
		}
		if q < prev {
			return fail(stats, fmt.Errorf("quantile regressed at p=%.2f", p))
		}
		prev = q
	}

	// A constant collection has exactly zero spread.
	constant := []float64{2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5}
	sd, err := summary.StdDev(constant)
	if err != nil {
		return fail(stats, err)
	}
	if sd != 0 {
		return fail(stats, fmt.Errorf("constant collection reported spread %v", sd))
	}

	values = []float64{2, 4, 4, 4, 5, 5, 7, 9}
	sd, err = summary.StdDev(values)
	if err != nil {
		return fail(stats, err)
	}
	se, err := summary.StdErr(values)
	if err != nil {
		return fail(stats, err)
	}
	if se != sd/math.Sqrt(float64(len(values))) {
		return fail(stats, fmt.Errorf("standard error %v does not match sd/sqrt(n)", se))
	}

	pass(stats)
	log.Println("✅ Summary statistic checks passed")
	return nil
}

// checkExtremeValues runs the extreme-value study end to end and
// verifies that its tail finding lands where the theory says it should.
func checkExtremeValues(ctx context.Context, config *Config, stats *Stats) error {
	log.Println("🔍 Checking the extreme-value study...")

	st, err := study.NewExtremeValue()
	if err != nil {
		return fail(stats, err)
	}

	svc := service.New(
		service.WithSeed(config.Seed),
		service.WithStudies(st),
	)
	results, err := svc.Run(ctx)
	if err != nil {
		return fail(stats, err)
	}

	res := results[0]
	p99 := res.Findings[0].Value
	if config.Verbose {
		log.Printf("📊 Extreme-value study: p99=%.4f mean=%.4f stddev=%.4f",
			p99, res.Summary.Mean, res.Summary.StdDev)
	}

	if p99 < 7.5 || p99 > 9.5 {
		return fail(stats, fmt.Errorf("p99 of maxima %.4f outside the expected band [7.5, 9.5]", p99))
	}
	// Mean 5 plus two standard deviations of 1.
	if p99 <= 7.0 {
		return fail(stats, fmt.Errorf("p99 of maxima %.4f not beyond mean+2sd of the sampled distribution", p99))
	}

	pass(stats)
	log.Println("✅ Extreme-value study checks passed")
	return nil
}

// checkBootstrap runs the bootstrap study over the built-in height
// sample and compares its standard error against the analytic one.
func checkBootstrap(ctx context.Context, config *Config, stats *Stats) error {
	log.Println("🔍 Checking the bootstrap study...")

	heights := appconfig.New().BootstrapSample
	st, err := study.NewBootstrapMean(heights)
	if err != nil {
		return fail(stats, err)
	}

	svc := service.New(
		service.WithSeed(config.Seed),
		service.WithStudies(st),
	)
	results, err := svc.Run(ctx)
	if err != nil {
		return fail(stats, err)
	}

	findings := make(map[string]float64, len(results[0].Findings))
	for _, f := range results[0].Findings {
		findings[f.Label] = f.Value
	}
	if config.Verbose {
		log.Printf("📊 Bootstrap study: se=%.4f sem=%.4f ratio=%.4f",
			findings["bootstrap_se"], findings["analytic_sem"], findings["se_ratio"])
	}

	ratio, ok := findings["se_ratio"]
	if !ok {
		return fail(stats, errors.New("bootstrap study reported no standard error ratio"))
	}
	if ratio < 0.7 || ratio > 1.3 {
		return fail(stats, fmt.Errorf("bootstrap/analytic standard error ratio %.4f outside [0.7, 1.3]", ratio))
	}

	pass(stats)
	log.Println("✅ Bootstrap study checks passed")
	return nil
}

// checkReproducibility runs both studies twice with the same seed and
// demands bit-identical trial collections.
func checkReproducibility(ctx context.Context, config *Config, stats *Stats) error {
	log.Println("🔍 Checking cross-run reproducibility...")

	run := func() ([]model.Result, error) {
		extremes, err := study.NewExtremeValue(study.WithExtremeRepetitions(300))
		if err != nil {
			return nil, err
		}
		bootstrap, err := study.NewBootstrapMean(appconfig.New().BootstrapSample,
			study.WithBootstrapRepetitions(300))
		if err != nil {
			return nil, err
		}
		svc := service.New(
			service.WithSeed(config.Seed),
			service.WithStudies(extremes, bootstrap),
		)
		return svc.Run(ctx)
	}

	first, err := run()
	if err != nil {
		return fail(stats, err)
	}
	second, err := run()
	if err != nil {
		return fail(stats, err)
	}

	for i := range first {
		if len(first[i].Trials) != len(second[i].Trials) {
			return fail(stats, fmt.Errorf("study %s: run lengths diverged", first[i].Study))
		}
		for j := range first[i].Trials {
			if first[i].Trials[j] != second[i].Trials[j] {
				return fail(stats, fmt.Errorf("study %s: trial %d diverged between runs", first[i].Study, j+1))
			}
		}
	}

	pass(stats)
	log.Println("✅ Reproducibility checks passed")
	return nil
}
