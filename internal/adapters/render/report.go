package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Hillea/statsthinking21-core/internal/domain/model"
)

// reportRuleWidth is the character width of report section rules.
const reportRuleWidth = 72

// WriteReport renders one simulation result as a plain-text report
// with the run header, the trial summary, the study findings, and a
// histogram of the trial values.
func WriteReport(w io.Writer, res model.Result, bins int) error {
	hist, err := NewHistogram(res.Trials, bins)
	if err != nil {
		return fmt.Errorf("build histogram: %w", err)
	}

	rule := strings.Repeat("=", reportRuleWidth)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "SIMULATION REPORT: %s\n", res.Study)
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "Run:\n")
	fmt.Fprintf(&b, "  ID:           %s\n", res.RunID)
	fmt.Fprintf(&b, "  Seed:         %d\n", res.Seed)
	fmt.Fprintf(&b, "  Repetitions:  %d\n", res.Repetitions)
	fmt.Fprintf(&b, "  Elapsed:      %s\n", res.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "Summary:\n")
	fmt.Fprintf(&b, "  Count:   %d\n", res.Summary.Count)
	fmt.Fprintf(&b, "  Mean:    %.4f\n", res.Summary.Mean)
	fmt.Fprintf(&b, "  StdDev:  %.4f\n", res.Summary.StdDev)
	fmt.Fprintf(&b, "  Min:     %.4f\n", res.Summary.Min)
	fmt.Fprintf(&b, "  Median:  %.4f\n", res.Summary.Median)
	fmt.Fprintf(&b, "  Max:     %.4f\n", res.Summary.Max)
	fmt.Fprintf(&b, "\n")

	if len(res.Findings) > 0 {
		fmt.Fprintf(&b, "Findings:\n")
		for _, f := range res.Findings {
			fmt.Fprintf(&b, "  %-14s %.4f\n", f.Label+":", f.Value)
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "Distribution:\n")
	if err := hist.Render(&b); err != nil {
		return err
	}
	fmt.Fprintf(&b, "%s\n", rule)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
