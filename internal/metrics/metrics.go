// Package metrics exposes upload counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns its registry so tests can build as many as they like.
type Collector struct {
	registry *prometheus.Registry

	batchesTotal  *prometheus.CounterVec
	recordsTotal  *prometheus.CounterVec
	batchDuration *prometheus.HistogramVec
}

func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Collector{
		registry: reg,
		batchesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pkrms",
			Name:      "upload_batches_total",
			Help:      "Total number of upload batches by final status.",
		}, []string{"status"}),
		recordsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pkrms",
			Name:      "upload_records_total",
			Help:      "Total number of uploaded records by entity and outcome.",
		}, []string{"entity", "outcome"}),
		batchDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pkrms",
			Name:      "upload_batch_duration_seconds",
			Help:      "Time spent processing an upload batch.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"status"}),
	}
}

func (c *Collector) ObserveBatch(status string, elapsed time.Duration) {
	c.batchesTotal.WithLabelValues(status).Inc()
	c.batchDuration.WithLabelValues(status).Observe(elapsed.Seconds())
}

func (c *Collector) ObserveRecord(entity, outcome string) {
	c.recordsTotal.WithLabelValues(entity, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
