package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

// Metrics holds the prometheus collectors of the api on a private registry
type Metrics struct {
	Registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ListingEvents   *prometheus.CounterVec
	ReviewEvents    *prometheus.CounterVec
	AdminUnlocks    *prometheus.CounterVec
}

// NewMetrics creates and registers every collector
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by route and status code.",
	}, []string{"method", "route", "status"})

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Latency of HTTP requests by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	listingEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_events_total",
		Help:      "Inventory mutations by kind (added, deleted).",
	}, []string{"event"})

	reviewEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "review_events_total",
		Help:      "Review moderation actions by kind.",
	}, []string{"event"})

	adminUnlocks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_unlocks_total",
		Help:      "Admin unlock attempts by result.",
	}, []string{"result"})

	registry.MustRegister(
		requestsTotal,
		requestDuration,
		listingEvents,
		reviewEvents,
		adminUnlocks,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		Registry:        registry,
		RequestsTotal:   requestsTotal,
		RequestDuration: requestDuration,
		ListingEvents:   listingEvents,
		ReviewEvents:    reviewEvents,
		AdminUnlocks:    adminUnlocks,
	}
}

// Handler exposes the registry in the prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Listing counts an inventory mutation. A nil Metrics counts nothing.
func (m *Metrics) Listing(event string) {
	if m == nil {
		return
	}
	m.ListingEvents.WithLabelValues(event).Inc()
}

// Review counts a review moderation action
func (m *Metrics) Review(event string) {
	if m == nil {
		return
	}
	m.ReviewEvents.WithLabelValues(event).Inc()
}

// AdminUnlock counts an unlock attempt
func (m *Metrics) AdminUnlock(ok bool) {
	if m == nil {
		return
	}
	result := "failure"
	if ok {
		result = "success"
	}
	m.AdminUnlocks.WithLabelValues(result).Inc()
}
