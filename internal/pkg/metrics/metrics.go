package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns the Prometheus collectors of one process. Each instance has
// its own prometheus.Registry, so tests can build as many as they need.
type Registry struct {
	reg              *prometheus.Registry
	OrderEvents      *prometheus.CounterVec
	ProductsUpserted prometheus.Counter
	DeadlineAlerts   prometheus.Gauge
	HTTPDurationSec  *prometheus.HistogramVec
}

// NewRegistry creates and registers every collector.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	orderEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shopfloor_order_events_total",
		Help: "Order changed events by resulting status.",
	}, []string{"status"})
	productsUpserted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shopfloor_products_upserted_total",
		Help: "Committed catalog upserts, from the API and the startup seed.",
	})
	alerts := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "shopfloor_deadline_alerts",
		Help: "Open orders inside the alert window at the last check.",
	})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shopfloor_http_request_duration_seconds",
		Help:    "HTTP request latency by method, route and status code.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "code"})

	r.MustRegister(orderEvents, productsUpserted, alerts, httpDuration)
	return &Registry{
		reg:              r,
		OrderEvents:      orderEvents,
		ProductsUpserted: productsUpserted,
		DeadlineAlerts:   alerts,
		HTTPDurationSec:  httpDuration,
	}
}

// Handler serves the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
