package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

type PrometheusMetrics struct {
	transfersTotal         *prometheus.CounterVec
	transferDuration       prometheus.Histogram
	transferAmount         prometheus.Histogram
	rateLookupsTotal       *prometheus.CounterVec
	rateLookupDuration     prometheus.Histogram
	circuitBreakerState    *prometheus.GaugeVec
	accountOperationsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transfersTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfers_total",
				Help: "Total number of transfers processed",
			},
			[]string{"status"},
		),
		transferDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_duration_milliseconds",
				Help:    "Transfer processing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transferAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_amount",
				Help:    "Transfer amount in source currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		rateLookupsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_rate_lookups_total",
				Help: "Total number of exchange rate lookups",
			},
			[]string{"status"},
		),
		rateLookupDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "exchange_rate_lookup_duration_milliseconds",
				Help:    "Exchange rate lookup duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		accountOperationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_operations_total",
				Help: "Total number of account management operations",
			},
			[]string{"operation"},
		),
	}
}

func (m *PrometheusMetrics) RecordTransfer(status string, duration time.Duration, amount decimal.Decimal) {
	m.transfersTotal.WithLabelValues(status).Inc()
	m.transferDuration.Observe(float64(duration.Milliseconds()))
	if status == "success" {
		amountValue, _ := amount.Float64()
		m.transferAmount.Observe(amountValue)
	}
}

func (m *PrometheusMetrics) RecordRateLookup(status string, duration time.Duration) {
	m.rateLookupsTotal.WithLabelValues(status).Inc()
	m.rateLookupDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordCircuitBreakerState(service string, state CircuitBreakerState) {
	m.circuitBreakerState.WithLabelValues(service).Set(float64(state))
}

func (m *PrometheusMetrics) RecordAccountOperation(operation string) {
	m.accountOperationsTotal.WithLabelValues(operation).Inc()
}
