/*
PURPOSE:
  Exports a benchmark comparison as a Prometheus textfile so CI hosts running
  node_exporter's textfile collector can chart performance over time.

REQUIREMENTS:
  Implementation-discovered:
  - A fresh registry per export; nothing global is registered.
  - Non-finite change percentages (zero baseline) are exported as-is;
    the exposition format supports +Inf/-Inf/NaN.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine.CompareBenchmarks (--metrics-file)
  - Uses: internal/bench.Result
*/

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/daryltucker/libkit/internal/bench"
	"github.com/daryltucker/libkit/internal/output"
)

const namespace = "libkit"

// Collectors holds the gauges for one comparison run.
type Collectors struct {
	ChangePercent *prometheus.GaugeVec
	OpsPerSecond  *prometheus.GaugeVec
	Comparisons   *prometheus.GaugeVec
	Threshold     prometheus.Gauge
}

// NewRegistry builds a registry with the comparison gauges registered.
func NewRegistry() (*prometheus.Registry, *Collectors) {
	c := &Collectors{
		ChangePercent: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "benchmark",
			Name:      "change_percent",
			Help:      "Relative throughput change against the baseline, in percent.",
		}, []string{"id", "name"}),
		OpsPerSecond: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "benchmark",
			Name:      "ops_per_second",
			Help:      "Benchmark throughput in operations per second.",
		}, []string{"id", "name", "run"}),
		Comparisons: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "benchmark",
			Name:      "comparisons",
			Help:      "Number of compared benchmarks by classification.",
		}, []string{"status"}),
		Threshold: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "benchmark",
			Name:      "threshold_percent",
			Help:      "Regression threshold used for classification.",
		}),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(c.ChangePercent, c.OpsPerSecond, c.Comparisons, c.Threshold)
	return reg, c
}

// Observe records every comparison in result.
func (c *Collectors) Observe(result *bench.Result) {
	c.Threshold.Set(result.Threshold)
	for _, status := range []string{"regression", "improvement", "stable"} {
		c.Comparisons.WithLabelValues(status).Set(0)
	}
	for _, cmp := range result.Comparisons {
		c.ChangePercent.WithLabelValues(cmp.ID, cmp.Name).Set(cmp.ChangePercent)
		c.OpsPerSecond.WithLabelValues(cmp.ID, cmp.Name, "baseline").Set(cmp.BaselineHz)
		c.OpsPerSecond.WithLabelValues(cmp.ID, cmp.Name, "current").Set(cmp.CurrentHz)
		c.Comparisons.WithLabelValues(output.Status(cmp)).Inc()
	}
}

// WriteTextfile writes result to path in the Prometheus text exposition format.
// The file is replaced atomically.
func WriteTextfile(path string, result *bench.Result) error {
	reg, c := NewRegistry()
	c.Observe(result)
	return prometheus.WriteToTextfile(path, reg)
}
