package selfcheck

import "time"

// Config holds configuration for the simulation self-check
type Config struct {
	Seed    int64         // Random seed; zero derives one at startup
	Timeout time.Duration // Overall run timeout
	LogFile string        // Log file for check output
	Verbose bool          // Enable verbose logging
}

// Stats holds self-check statistics
type Stats struct {
	ChecksRun    int
	ChecksPassed int
	ChecksFailed int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
}
