package cli

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// appMetrics is the Prometheus registry of the most recently built app.
var appMetrics *prometheus.Registry

// writeMetrics writes the gathered registry metrics in the Prometheus text
// exposition format. It writes nothing when no app was built.
func writeMetrics(w io.Writer) error {
	if appMetrics == nil {
		return nil
	}
	families, err := appMetrics.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
