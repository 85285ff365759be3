package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registers and records the service's Prometheus metrics.
type Collector struct {
	registry *prometheus.Registry

	ordersCreated    prometheus.Counter
	statusChanges    *prometheus.CounterVec
	chatRequests     *prometheus.CounterVec
	analyticsRefresh prometheus.Histogram
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Orders placed, directly or through the chat assistant",
	})

	statusChanges := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_status_changes_total",
		Help: "Order status transitions",
	}, []string{"status"})

	chatRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_requests_total",
		Help: "Chat assistant turns by outcome",
	}, []string{"outcome"})

	analyticsRefresh := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "analytics_refresh_seconds",
		Help:    "Time spent recomputing the analytics aggregate",
		Buckets: prometheus.DefBuckets,
	})

	registry.MustRegister(ordersCreated, statusChanges, chatRequests, analyticsRefresh)

	return &Collector{
		registry:         registry,
		ordersCreated:    ordersCreated,
		statusChanges:    statusChanges,
		chatRequests:     chatRequests,
		analyticsRefresh: analyticsRefresh,
	}
}

// RecordOrderCreated counts a newly placed order.
func (c *Collector) RecordOrderCreated() {
	c.ordersCreated.Inc()
}

// RecordStatusChange counts an order status transition.
func (c *Collector) RecordStatusChange(status string) {
	c.statusChanges.WithLabelValues(status).Inc()
}

// RecordChatRequest counts a chat turn. Outcome is one of "reply", "menu",
// "table", "order" or "error".
func (c *Collector) RecordChatRequest(outcome string) {
	c.chatRequests.WithLabelValues(outcome).Inc()
}

// ObserveAnalyticsRefresh records the duration of one analytics recompute.
func (c *Collector) ObserveAnalyticsRefresh(d time.Duration) {
	c.analyticsRefresh.Observe(d.Seconds())
}

// Handler exposes the registry for the metrics server.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
