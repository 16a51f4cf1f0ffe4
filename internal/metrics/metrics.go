// Package metrics collects Prometheus counters for the job lifecycle and
// exposes them over /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector tracks job lifecycle metrics on its own registry, so multiple
// instances can coexist in tests.
type Collector struct {
	registry *prometheus.Registry

	jobsStarted   prometheus.Counter
	jobsCompleted prometheus.Counter
	jobsFailed    prometheus.Counter
	jobsInFlight  prometheus.Gauge
}

// NewCollector creates and registers the job metrics.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		jobsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ytfetch_jobs_started_total",
			Help: "Total number of download jobs dispatched to a worker.",
		}),
		jobsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ytfetch_jobs_completed_total",
			Help: "Total number of download jobs that finished successfully.",
		}),
		jobsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ytfetch_jobs_failed_total",
			Help: "Total number of download jobs that ended in error.",
		}),
		jobsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ytfetch_jobs_in_flight",
			Help: "Number of download jobs currently running.",
		}),
	}

	c.registry.MustRegister(c.jobsStarted, c.jobsCompleted, c.jobsFailed, c.jobsInFlight)
	return c
}

// JobStarted records a job dispatch.
func (c *Collector) JobStarted() {
	c.jobsStarted.Inc()
	c.jobsInFlight.Inc()
}

// JobCompleted records a successful terminal transition.
func (c *Collector) JobCompleted() {
	c.jobsCompleted.Inc()
	c.jobsInFlight.Dec()
}

// JobFailed records a failed terminal transition.
func (c *Collector) JobFailed() {
	c.jobsFailed.Inc()
	c.jobsInFlight.Dec()
}

// Handler serves the collector's registry in Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
