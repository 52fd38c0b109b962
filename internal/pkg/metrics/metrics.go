// Package metrics owns the service's prometheus registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	HTTPRequests       *prometheus.CounterVec
	HTTPRequestLatency *prometheus.HistogramVec
	AuthFailures       *prometheus.CounterVec
	AccessDenied       *prometheus.CounterVec

	OutboxPublished prometheus.Counter
	OutboxFailures  prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orderdesk_http_requests_total",
		Help: "HTTP requests by method, route template and status code.",
	}, []string{"method", "route", "status"})
	httpLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "orderdesk_http_request_duration_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	authFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orderdesk_auth_failures_total",
		Help: "Rejected bearer tokens by reason.",
	}, []string{"reason"})
	accessDenied := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orderdesk_authorization_denied_total",
		Help: "Operations refused by the access policy.",
	}, []string{"operation"})
	outboxPublished := prometheus.NewCounter(prometheus.CounterOpts{Name: "orderdesk_outbox_published_total"})
	outboxFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "orderdesk_outbox_failures_total"})

	r.MustRegister(httpRequests, httpLatency, authFailures, accessDenied, outboxPublished, outboxFailures)
	return &Registry{
		reg:                r,
		HTTPRequests:       httpRequests,
		HTTPRequestLatency: httpLatency,
		AuthFailures:       authFailures,
		AccessDenied:       accessDenied,
		OutboxPublished:    outboxPublished,
		OutboxFailures:     outboxFailures,
	}
}

// Gatherer exposes the registry to tests.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
