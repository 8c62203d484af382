package selfcheck

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/Hillea/statsthinking21-core/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "selfcheck_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the self-check tool.
func ShowHelp() {
	os.Stdout.WriteString(`Simulation Self-Check Tool
==========================

Runs the simulation exercises end to end and verifies their known
statistical properties against the live implementation.

Usage:
  go run cmd/selfcheck/main.go [options]

Options:
  -seed int
        Random seed for the statistical checks (default: derive at startup)
  -timeout duration
        Overall self-check timeout (default 2m0s)
  -log string
        Log file for check output (default: selfcheck_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Run with a derived seed
  go run cmd/selfcheck/main.go

  # Replay a previous run
  go run cmd/selfcheck/main.go -seed 20210302

  # Verbose output with a custom log file
  go run cmd/selfcheck/main.go -verbose -log my_check.log
`)
}
