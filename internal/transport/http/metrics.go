package http

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks page renders served over HTTP
type Metrics struct {
	reg *prometheus.Registry

	renders          *prometheus.CounterVec
	renderDuration   prometheus.Histogram
	messagesRendered prometheus.Counter
}

// NewMetrics creates the collectors on a private registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	reg.MustRegister(collectors.NewGoCollector())

	return &Metrics{
		reg: reg,

		renders: f.NewCounterVec(prometheus.CounterOpts{
			Name: "archive_viewer_renders_total",
			Help: "Total number of page renders by outcome",
		}, []string{"status"}),
		renderDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "archive_viewer_render_duration_seconds",
			Help:    "Time spent loading and rendering the archive page",
			Buckets: prometheus.DefBuckets,
		}),
		messagesRendered: f.NewCounter(prometheus.CounterOpts{
			Name: "archive_viewer_messages_rendered_total",
			Help: "Total number of messages rendered into pages",
		}),
	}
}

// ObserveRender records one render attempt
func (m *Metrics) ObserveRender(status string, messages int, elapsed time.Duration) {
	m.renders.WithLabelValues(status).Inc()
	if status != "ok" {
		return
	}
	m.renderDuration.Observe(elapsed.Seconds())
	m.messagesRendered.Add(float64(messages))
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.InstrumentMetricHandler(
		m.reg, promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{}),
	)
}
