package metrics

import (
	"bytes"
	"fmt"
	"os"

	"github.com/prometheus/common/expfmt"
)

// WriteTextfile dumps the current registry state to path in the Prometheus
// text exposition format, suitable for the node-exporter textfile collector.
// A no-op when metrics are disabled.
func WriteTextfile(path string) error {
	if !globalManager.enabled {
		return nil
	}

	families, err := customRegistry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	var buf bytes.Buffer
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return fmt.Errorf("encode metric family %q: %w", mf.GetName(), err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write metrics file: %w", err)
	}
	return nil
}
