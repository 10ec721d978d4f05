// Package observability exposes the marketplace's Prometheus metrics.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the counters the lifecycle and transaction services record.
type Metrics struct {
	registry *prometheus.Registry

	Registrations         *prometheus.CounterVec
	RegistrationConflicts *prometheus.CounterVec
	AuthFailures          *prometheus.CounterVec
	UniquenessReclaims    *prometheus.CounterVec
	PasscodesIssued       *prometheus.CounterVec
	PasscodesVerified     *prometheus.CounterVec
	OrderTransitions      *prometheus.CounterVec
	PaymentTransitions    *prometheus.CounterVec
}

// NewMetrics creates and registers the metric set on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		Registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mealmart_registrations_total",
			Help: "Successful account registrations by role.",
		}, []string{"role"}),
		RegistrationConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mealmart_registration_conflicts_total",
			Help: "Registrations rejected because a verified account held the identifier.",
		}, []string{"field"}),
		AuthFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mealmart_auth_failures_total",
			Help: "Failed authentication attempts by role.",
		}, []string{"role"}),
		UniquenessReclaims: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mealmart_uniqueness_reclaims_total",
			Help: "Unverified records hard-deleted to free an identifier.",
		}, []string{"field"}),
		PasscodesIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mealmart_passcodes_issued_total",
			Help: "Verification passcodes issued by channel.",
		}, []string{"channel"}),
		PasscodesVerified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mealmart_passcodes_verified_total",
			Help: "Verification passcodes accepted by channel.",
		}, []string{"channel"}),
		OrderTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mealmart_order_transitions_total",
			Help: "Order status transitions by target status.",
		}, []string{"status"}),
		PaymentTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mealmart_payment_transitions_total",
			Help: "Payment status transitions by target status.",
		}, []string{"status"}),
	}

	registry.MustRegister(
		m.Registrations,
		m.RegistrationConflicts,
		m.AuthFailures,
		m.UniquenessReclaims,
		m.PasscodesIssued,
		m.PasscodesVerified,
		m.OrderTransitions,
		m.PaymentTransitions,
	)
	return m
}

// Handler returns the HTTP handler serving the registry in Prometheus format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for test assertions.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
