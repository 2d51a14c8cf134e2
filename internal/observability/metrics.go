// Package observability holds shim metrics. Exposition is left to the
// embedding process; the shim itself never opens a listener.
package observability

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	routeAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "routeshim",
			Subsystem: "routing",
			Name:      "attempts_total",
			Help:      "Routing attempts per intercepted primitive.",
		},
		[]string{"primitive"},
	)
	routeDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "routeshim",
			Subsystem: "routing",
			Name:      "decisions_total",
			Help:      "Daemon decisions received, by exit status.",
		},
		[]string{"primitive", "status"},
	)
	routeFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "routeshim",
			Subsystem: "routing",
			Name:      "fallbacks_total",
			Help:      "Local fallbacks, by undecided reason.",
		},
		[]string{"primitive", "reason"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(routeAttempts, routeDecisions, routeFallbacks)
	})
}

func RecordRouteAttempt(primitive string) {
	RegisterMetrics()
	routeAttempts.WithLabelValues(primitive).Inc()
}

func RecordRouteDecision(primitive string, status int) {
	RegisterMetrics()
	routeDecisions.WithLabelValues(primitive, strconv.Itoa(status)).Inc()
}

func RecordFallback(primitive, reason string) {
	RegisterMetrics()
	routeFallbacks.WithLabelValues(primitive, reason).Inc()
}
