package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/Hillea/statsthinking21-core/internal/selfcheck"
)

// Default configuration constants.
const (
	defaultTimeout = 2 * time.Minute
)

func main() {
	var (
		seed    = flag.Int64("seed", 0, "Random seed for the statistical checks (default: derive at startup)")
		timeout = flag.Duration("timeout", defaultTimeout, "Overall self-check timeout")
		logFile = flag.String("log", "", "Log file for check output (default: selfcheck_log_TIMESTAMP.log)")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		selfcheck.ShowHelp()
		return
	}

	// Setup logging
	if err := selfcheck.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// Create check configuration
	config := &selfcheck.Config{
		Seed:    *seed,
		Timeout: *timeout,
		LogFile: *logFile,
		Verbose: *verbose,
	}

	// Run the checks
	if err := selfcheck.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Self-check failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
