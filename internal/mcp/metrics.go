package mcp

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ToolCallsTotal   *prometheus.CounterVec
	ToolCallDuration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ToolCallsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mcp_tool_calls_total",
				Help: "Tool invocations by outcome",
			},
			[]string{"tool", "outcome"},
		),
		ToolCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mcp_tool_call_duration_seconds",
				Help:    "Tool invocation latency",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
			},
			[]string{"tool"},
		),
	}
}

// RecordCall labels a successful call "ok" and a failed one by error kind.
func (m *Metrics) RecordCall(tool, kind string, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := kind
	if outcome == "" {
		outcome = "ok"
	}
	m.ToolCallsTotal.WithLabelValues(tool, outcome).Inc()
	m.ToolCallDuration.WithLabelValues(tool).Observe(elapsed.Seconds())
}
