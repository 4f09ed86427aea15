package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// QuotesTotal counts quote computations by formula and outcome.
	QuotesTotal *prometheus.CounterVec
	// QuoteAmount records quoted amounts in minor units, per formula.
	QuoteAmount *prometheus.HistogramVec
	// GridReloadTotal counts rate-grid reloads by trigger and result.
	GridReloadTotal *prometheus.CounterVec
	// GridRows tracks the row count of the active rate-grid snapshot.
	GridRows prometheus.Gauge
	// SettingsRefreshTotal counts pricing-settings refresh outcomes.
	SettingsRefreshTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		QuotesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_total",
			Help:      "Count of quote computations by formula and outcome.",
		}, []string{"formula", "outcome"})
		QuoteAmount = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_amount_minor_units",
			Help:      "Quoted amounts in minor currency units.",
			Buckets:   []float64{1000, 2500, 5000, 10000, 25000, 50000, 100000, 250000},
		}, []string{"formula"})
		GridReloadTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grid_reload_total",
			Help:      "Count of rate-grid reloads by trigger and result.",
		}, []string{"trigger", "result"})
		GridRows = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "grid_rows",
			Help:      "Row count of the active rate-grid snapshot.",
		})
		SettingsRefreshTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settings_refresh_total",
			Help:      "Count of pricing-settings refresh outcomes.",
		}, []string{"result"})

		mustRegisterCollector(reg, QuotesTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				QuotesTotal = v
			}
		})
		mustRegisterCollector(reg, QuoteAmount, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.HistogramVec); ok {
				QuoteAmount = v
			}
		})
		mustRegisterCollector(reg, GridReloadTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				GridReloadTotal = v
			}
		})
		mustRegisterCollector(reg, GridRows, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Gauge); ok {
				GridRows = v
			}
		})
		mustRegisterCollector(reg, SettingsRefreshTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				SettingsRefreshTotal = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
