package santa

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/santa/internal/logging"
	"github.com/arloliu/santa/internal/metrics"
)

// NewPrometheusMetrics returns a MetricsCollector backed by Prometheus.
//
// Collectors are registered with reg on first use.
//
// Parameters:
//   - reg: Registerer (nil means prometheus.DefaultRegisterer)
//   - namespace: Metric namespace ("" means "santa")
//
// Returns:
//   - MetricsCollector: Collector for WithMetrics and publish.WithMetrics
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	group, err := santa.NewGroup(nil, santa.WithMetrics(santa.NewPrometheusMetrics(reg, "")))
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) MetricsCollector {
	return metrics.NewPrometheus(reg, namespace)
}

// NewSlogLogger adapts a *slog.Logger to the Logger interface.
func NewSlogLogger(l *slog.Logger) Logger {
	return logging.NewSlog(l)
}

// NewTextLogger returns a Logger writing logfmt-style text to w.
//
// Parameters:
//   - w: Destination writer
//   - level: "debug", "info", "warn", or "error" ("" means debug)
//
// Returns:
//   - Logger: Logger at the requested level
//   - error: Error for an unknown level
func NewTextLogger(w io.Writer, level string) (Logger, error) {
	l, err := logging.NewText(w, level)
	if err != nil {
		return nil, err
	}

	return l, nil
}
