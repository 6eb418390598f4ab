// Invariants are conditions that must hold unless there is a bug in this code base, e.g. a list whose size
// disagrees with the length of its node chain. They mark the places where a `panic()` would be tempting but
// where crashing a long running process is worse than reporting the violation.
//
// A violated invariant records an error log and increments the `invariants_total` counter, labeled with the
// module and the invariant type. Binaries built with the TestMode flag (and therefore tests) panic instead, so
// the violation can't go unnoticed. Handling the erroneous case (an early return, a fallback value) is still
// up to the caller.
//
// Never raise invariants for conditions that depend on callers or on the outside world: a nil element passed to
// a list is an argument error, not an invariant violation.

package utils

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	promclient "github.com/prometheus/client_model/go"
)

var invariantsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "invariants_total",
	Help: "The total number of invariant violations",
}, []string{
	"module", // The module in which this invariant occurred.
	"type",   // The type of the invariant that occurred.
})

// RaiseInvariant reports a violated invariant of `module`; `args` are slog key-value attributes.
func RaiseInvariant(module, invariantType, msg string, args ...any) {
	invariantsMetric.WithLabelValues(module, invariantType).Inc()
	slog.With("invariant", invariantType, "module", module).Error(msg, args...)
	if IsTestMode {
		panic("invariant violated: " + invariantType)
	}
}

// GetMetricValue returns the current value of the invariant counter with labels `module` and `invariantType`.
func GetMetricValue(module, invariantType string) int {
	var metric = &promclient.Metric{}
	if err := invariantsMetric.WithLabelValues(module, invariantType).Write(metric); err != nil {
		slog.Error(err.Error())
		return 0
	}
	return int(metric.Counter.GetValue())
}
