package metrics

import "github.com/prometheus/client_golang/prometheus"

// Attio API and tool invocation Prometheus metrics.
var (
	AttioRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "attiodex",
			Name:      "attio_requests_total",
			Help:      "Total number of Attio API requests",
		},
		[]string{"operation", "resource", "status"},
	)

	AttioRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "attiodex",
			Name:      "attio_request_duration_seconds",
			Help:      "Attio API request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation", "resource"},
	)

	SearchFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "attiodex",
			Name:      "search_fallbacks_total",
			Help:      "Strict searches that fell back to the relaxed OR query",
		},
		[]string{"resource"},
	)

	ToolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "attiodex",
			Name:      "tool_calls_total",
			Help:      "Total number of MCP tool invocations",
		},
		[]string{"tool", "status"},
	)

	ToolCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "attiodex",
			Name:      "tool_call_duration_seconds",
			Help:      "MCP tool invocation duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"tool"},
	)
)

var attioMetricsRegistered bool

// RegisterAttioMetrics registers the Attio and tool metrics. Must be called
// once from main.
func RegisterAttioMetrics() {
	if attioMetricsRegistered {
		return
	}
	prometheus.MustRegister(AttioRequestsTotal)
	prometheus.MustRegister(AttioRequestDuration)
	prometheus.MustRegister(SearchFallbacksTotal)
	prometheus.MustRegister(ToolCallsTotal)
	prometheus.MustRegister(ToolCallDuration)
	attioMetricsRegistered = true
}
