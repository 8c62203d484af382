package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Hillea/statsthinking21-core/internal/adapters/render"
	app "github.com/Hillea/statsthinking21-core/internal/app"
	"github.com/Hillea/statsthinking21-core/internal/config"
	"github.com/Hillea/statsthinking21-core/internal/domain/study"
	"github.com/Hillea/statsthinking21-core/pkg/logger"
	"github.com/Hillea/statsthinking21-core/pkg/metrics"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()

	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Build the configured studies
	studies, err := buildStudies(cfg)
	if err != nil {
		loggerInstance.Error(ctx, "invalid study configuration", logger.Error(err))
		os.Exit(1)
	}

	// Create the service and run the studies
	svc := app.New(
		app.WithLogger(loggerInstance),
		app.WithSeed(cfg.Seed),
		app.WithStudies(studies...),
	)
	results, err := svc.Run(ctx)
	if err != nil {
		loggerInstance.Error(ctx, "simulation run failed", logger.Error(err))
		os.Exit(1)
	}

	// Reports go to stdout unless a file is configured.
	var out io.Writer = os.Stdout
	if cfg.ReportFile != "" {
		file, err := os.Create(cfg.ReportFile)
		if err != nil {
			loggerInstance.Error(ctx, "failed to create report file", logger.String("reportFile", cfg.ReportFile), logger.Error(err))
			os.Exit(1)
		}
		defer func() {
			if err := file.Close(); err != nil {
				loggerInstance.Error(context.Background(), "failed to close report file", logger.Error(err))
			}
		}()
		out = file
		loggerInstance.Info(ctx, "writing reports to file", logger.String("reportFile", cfg.ReportFile))
	}

	for _, res := range results {
		if err := render.WriteReport(out, res, cfg.HistogramBins); err != nil {
			loggerInstance.Error(ctx, "failed to render report", logger.String("study", res.Study), logger.Error(err))
			os.Exit(1)
		}
	}

	// Export metrics for a node-exporter textfile collector if configured.
	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			loggerInstance.Warn(ctx, "failed to export metrics", logger.String("metricsFile", cfg.MetricsFile), logger.Error(err))
		} else {
			loggerInstance.Info(ctx, "metrics exported", logger.String("metricsFile", cfg.MetricsFile))
		}
	}

	loggerInstance.Info(ctx, "simulation run complete", logger.Int("studies", len(results)))
}

// buildStudies assembles the enabled studies from configuration.
func buildStudies(cfg *config.Config) ([]study.Study, error) {
	var studies []study.Study

	if cfg.ExtremesEnabled {
		extremes, err := study.NewExtremeValue(
			study.WithExtremeMean(cfg.ExtremesMean),
			study.WithExtremeStdDev(cfg.ExtremesStdDev),
			study.WithExtremeDraws(cfg.ExtremesDraws),
			study.WithExtremeRepetitions(cfg.ExtremesRepetitions),
			study.WithExtremeQuantile(cfg.ExtremesQuantile),
		)
		if err != nil {
			return nil, err
		}
		studies = append(studies, extremes)
	}

	if cfg.BootstrapEnabled {
		bootstrap, err := study.NewBootstrapMean(cfg.BootstrapSample,
			study.WithBootstrapRepetitions(cfg.BootstrapRepetitions),
			study.WithBootstrapResampleSize(cfg.BootstrapResampleSize),
		)
		if err != nil {
			return nil, err
		}
		studies = append(studies, bootstrap)
	}

	return studies, nil
}
