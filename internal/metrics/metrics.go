// Package metrics holds the Prometheus metrics exported by the RPC server.
package metrics

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/homebills/internal/storage"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// RPC metrics
	RPCRequestsTotal   *prometheus.CounterVec
	RPCRequestDuration *prometheus.HistogramVec

	// Business metrics
	BillsCreatedTotal  *prometheus.CounterVec
	PaymentsAddedTotal prometheus.Counter
}

// NewMetrics creates and registers the metrics with registry.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		RPCRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "homebills_rpc_requests_total",
				Help: "Total number of RPC requests",
			},
			[]string{"procedure", "code"},
		),
		RPCRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "homebills_rpc_request_duration_seconds",
				Help:    "RPC request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"procedure"},
		),
		BillsCreatedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "homebills_bills_created_total",
				Help: "Total number of bills created",
			},
			[]string{"category"},
		),
		PaymentsAddedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "homebills_payments_added_total",
				Help: "Total number of payments recorded",
			},
		),
	}

	registry.MustRegister(
		m.RPCRequestsTotal,
		m.RPCRequestDuration,
		m.BillsCreatedTotal,
		m.PaymentsAddedTotal,
	)

	return m
}

// RegisterStoreGauges exports the current number of providers and users.
// The gauges count the store on every scrape; bills and payments are not loaded.
func RegisterStoreGauges(registry prometheus.Registerer, store storage.Store) {
	registry.MustRegister(
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "homebills_providers",
				Help: "Number of registered providers",
			},
			func() float64 {
				n, err := store.CountProviders(context.Background())
				if err != nil {
					slog.Warn("Failed to count providers", "error", err)
					return 0
				}
				return float64(n)
			},
		),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "homebills_users",
				Help: "Number of registered users",
			},
			func() float64 {
				n, err := store.CountUsers(context.Background())
				if err != nil {
					slog.Warn("Failed to count users", "error", err)
					return 0
				}
				return float64(n)
			},
		),
	)
}
