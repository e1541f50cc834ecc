// Package metrics registers the Prometheus collectors for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LedgerMutations counts writes per table and outcome (ok, denied, error).
	LedgerMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kosboard_ledger_mutations_total",
		Help: "Ledger and roster mutation attempts by table and outcome.",
	}, []string{"table", "outcome"})

	// RequestDuration observes HTTP handler latency per route and status.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kosboard_http_request_duration_seconds",
		Help:    "HTTP request duration by route and status code.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method", "status"})

	// Logins counts sign-in attempts by outcome (ok, rejected).
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kosboard_logins_total",
		Help: "Sign-in attempts by outcome.",
	}, []string{"outcome"})
)
