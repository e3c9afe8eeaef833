package usecase

import (
	"github.com/prometheus/client_golang/prometheus"

	"promo-budget/internal/core/domain"
)

// Metrics counts transaction outcomes. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	transactions prometheus.Counter
	deductions   *prometheus.CounterVec
}

// NewMetrics creates the transaction counters and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transactions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "promo",
			Name:      "transactions_recorded_total",
			Help:      "Number of recorded transactions.",
		}),
		deductions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "promo",
			Name:      "product_deductions_total",
			Help:      "Per-product discount outcomes by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.transactions, m.deductions)
	return m
}

func (m *Metrics) observe(deductions []domain.Deduction) {
	if m == nil {
		return
	}
	m.transactions.Inc()
	for _, d := range deductions {
		switch {
		case d.Campaign == nil:
			m.deductions.WithLabelValues("no_campaign").Inc()
		case d.Applied:
			m.deductions.WithLabelValues("applied").Inc()
		case d.Exhausted:
			m.deductions.WithLabelValues("exhausted").Inc()
		default:
			m.deductions.WithLabelValues("insufficient_budget").Inc()
		}
	}
}
