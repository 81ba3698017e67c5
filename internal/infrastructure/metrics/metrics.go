package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fixxbuddy"

type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

func NewServerMetrics(reg prometheus.Registerer) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"route", "method", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"route", "method"})

	reg.MustRegister(requests, latency)
	return &ServerMetrics{Requests: requests, LatencyMS: latency}
}

// DomainMetrics counts order-core outcomes. A nil *DomainMetrics records nothing.
type DomainMetrics struct {
	Transitions         *prometheus.CounterVec
	CheckoutPricing     *prometheus.CounterVec
	OtpVerifications    *prometheus.CounterVec
	NotificationsFailed *prometheus.CounterVec
}

func NewDomainMetrics(reg prometheus.Registerer) *DomainMetrics {
	m := &DomainMetrics{
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Applied order status transitions.",
		}, []string{"from", "to"}),
		CheckoutPricing: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_pricing_total",
			Help:      "Checkout pricing runs by result.",
		}, []string{"result"}),
		OtpVerifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_verifications_total",
			Help:      "Service-start OTP verifications by result.",
		}, []string{"result"}),
		NotificationsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_failed_total",
			Help:      "Notification publishes that failed and were dropped.",
		}, []string{"event"}),
	}
	reg.MustRegister(m.Transitions, m.CheckoutPricing, m.OtpVerifications, m.NotificationsFailed)
	return m
}

func (m *DomainMetrics) Transition(from, to string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(from, to).Inc()
}

func (m *DomainMetrics) Checkout(result string) {
	if m == nil {
		return
	}
	m.CheckoutPricing.WithLabelValues(result).Inc()
}

func (m *DomainMetrics) Otp(result string) {
	if m == nil {
		return
	}
	m.OtpVerifications.WithLabelValues(result).Inc()
}

func (m *DomainMetrics) NotificationFailed(event string) {
	if m == nil {
		return
	}
	m.NotificationsFailed.WithLabelValues(event).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
