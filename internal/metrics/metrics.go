package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransfersTotal counts committed transfers.
	TransfersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallet_transfers_total",
		Help: "Number of successfully committed transfers",
	})

	// TransfersFailedTotal counts transfers rolled back with an error.
	TransfersFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallet_transfers_failed_total",
		Help: "Number of failed transfer attempts",
	})

	// TransferDuration observes end-to-end transfer latency.
	TransferDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wallet_transfer_duration_seconds",
		Help:    "Duration of transfer operations",
		Buckets: prometheus.DefBuckets,
	})

	// RateRefreshTotal counts per-currency snapshot refreshes that succeeded.
	RateRefreshTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "exchange_rate_refresh_total",
		Help: "Number of exchange rate snapshots refreshed",
	})

	// RateRefreshFailedTotal counts per-currency refresh failures.
	RateRefreshFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "exchange_rate_refresh_failed_total",
		Help: "Number of failed exchange rate refreshes",
	})
)
