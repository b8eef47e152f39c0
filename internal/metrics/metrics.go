// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes sponsorship counters and gauges to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sponsor"

// Outcome labels for SponsorshipsTotal.
const (
	OutcomeSuccess  = "success"
	OutcomeFailed   = "failed"
	OutcomeRejected = "rejected"
)

// SponsorMetrics holds the service's collectors on a private registry.
// Every method is safe on a nil receiver, so tests can pass nil.
type SponsorMetrics struct {
	registry *prometheus.Registry

	sponsorships *prometheus.CounterVec
	feeTotal     prometheus.Counter
	overCap      prometheus.Counter
	dailyUsed    prometheus.Gauge
	balance      prometheus.Gauge
	balanceLow   prometheus.Gauge
	keypairs     *prometheus.CounterVec
	httpRequests *prometheus.HistogramVec
}

// New registers all collectors, plus the Go runtime and process collectors,
// on a fresh registry.
func New() *SponsorMetrics {
	m := &SponsorMetrics{
		registry: prometheus.NewRegistry(),
		sponsorships: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sponsorships_total",
			Help:      "Sponsorship requests by operation type and outcome.",
		}, []string{"operation_type", "outcome"}),
		feeTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fee_used_total",
			Help:      "Gas paid by the sponsor, in MIST.",
		}),
		overCap: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "over_cap_total",
			Help:      "Executions whose actual cost exceeded the per-transaction cap.",
		}),
		dailyUsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "daily_gas_used",
			Help:      "Gas used since the last daily reset.",
		}),
		balance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "wallet_balance",
			Help:      "Last observed sponsor wallet balance, in MIST.",
		}),
		balanceLow: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "wallet_balance_low",
			Help:      "1 when the sponsor balance is under the threshold.",
		}),
		keypairs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "custody",
			Name:      "keypair_operations_total",
			Help:      "Custodial keypair operations by kind.",
		}, []string{"operation"}),
		httpRequests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern, method and status.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"route", "method", "status"}),
	}

	m.registry.MustRegister(
		m.sponsorships, m.feeTotal, m.overCap, m.dailyUsed, m.balance, m.balanceLow, m.keypairs, m.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *SponsorMetrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *SponsorMetrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *SponsorMetrics) ObserveSponsorship(operationType, outcome string) {
	if m == nil {
		return
	}
	m.sponsorships.WithLabelValues(operationType, outcome).Inc()
}

func (m *SponsorMetrics) AddFee(fee uint64) {
	if m == nil {
		return
	}
	m.feeTotal.Add(float64(fee))
}

func (m *SponsorMetrics) IncOverCap() {
	if m == nil {
		return
	}
	m.overCap.Inc()
}

func (m *SponsorMetrics) SetDailyUsed(used uint64) {
	if m == nil {
		return
	}
	m.dailyUsed.Set(float64(used))
}

func (m *SponsorMetrics) SetBalance(balance uint64, low bool) {
	if m == nil {
		return
	}
	m.balance.Set(float64(balance))
	if low {
		m.balanceLow.Set(1)
	} else {
		m.balanceLow.Set(0)
	}
}

// ObserveKeypair counts a custody operation: "generate", "sign", "delete".
func (m *SponsorMetrics) ObserveKeypair(operation string) {
	if m == nil {
		return
	}
	m.keypairs.WithLabelValues(operation).Inc()
}

// ObserveHTTPRequest records one served request. route must be the matched
// pattern, not the raw path, to keep label cardinality bounded.
func (m *SponsorMetrics) ObserveHTTPRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
