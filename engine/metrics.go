// SPDX-License-Identifier: MIT

package engine

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds Prometheus counters for engine activity.
type Metrics struct {
	Solves         *prometheus.CounterVec // by method
	EigenFallbacks prometheus.Counter
	RankReversals  prometheus.Counter
	CacheHits      prometheus.Counter
}

// NewMetrics creates the engine counters and registers them on reg
// (a private registry in tests, prometheus.DefaultRegisterer in services).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	solves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ahp_solves_total",
		Help: "Total number of solved comparison matrices",
	}, []string{"method"})

	fallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ahp_eigen_fallbacks_total",
		Help: "Total number of eigenvector failures recovered with the geometric mean",
	})

	reversals := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ahp_rank_reversals_total",
		Help: "Total number of rank reversals found by sensitivity analysis",
	})

	hits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ahp_solve_cache_hits_total",
		Help: "Total number of solves answered from the result cache",
	})

	reg.MustRegister(solves, fallbacks, reversals, hits)

	return &Metrics{
		Solves:         solves,
		EigenFallbacks: fallbacks,
		RankReversals:  reversals,
		CacheHits:      hits,
	}
}

func (m *Metrics) observeSolve(method string) {
	if m != nil {
		m.Solves.WithLabelValues(method).Inc()
	}
}

func (m *Metrics) observeFallback(error) {
	if m != nil {
		m.EigenFallbacks.Inc()
	}
}

func (m *Metrics) observeReversals(n int) {
	if m != nil && n > 0 {
		m.RankReversals.Add(float64(n))
	}
}

func (m *Metrics) observeCacheHit() {
	if m != nil {
		m.CacheHits.Inc()
	}
}
