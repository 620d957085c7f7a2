package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business Metrics
	UsersCreated        prometheus.Counter
	MessagesStored      prometheus.Counter
	RateLimitDenials    prometheus.Counter
	WebhookAuthFailures prometheus.Counter

	// Validation Metrics
	ValidationErrors *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "userservice_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "userservice_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "userservice_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
		UsersCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "userservice_users_created_total",
				Help: "Total number of users created",
			},
		),
		MessagesStored: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "userservice_messages_stored_total",
				Help: "Total number of inbound messages stored",
			},
		),
		RateLimitDenials: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "userservice_rate_limit_denials_total",
				Help: "Total number of webhook requests denied by the rate limiter",
			},
		),
		WebhookAuthFailures: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "userservice_webhook_auth_failures_total",
				Help: "Total number of webhook requests with a bad or missing token",
			},
		),
		ValidationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "userservice_validation_errors_total",
				Help: "Total number of request validation failures",
			},
			[]string{"operation"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordUserCreated() {
	m.UsersCreated.Inc()
}

func (m *Metrics) RecordMessageStored() {
	m.MessagesStored.Inc()
}

func (m *Metrics) RecordRateLimitDenial() {
	m.RateLimitDenials.Inc()
}

func (m *Metrics) RecordWebhookAuthFailure() {
	m.WebhookAuthFailures.Inc()
}

func (m *Metrics) RecordValidationError(operation string) {
	m.ValidationErrors.WithLabelValues(operation).Inc()
}
