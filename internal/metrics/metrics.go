// Package metrics exposes terminal health counters over Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the terminal's Prometheus collectors.
type Metrics struct {
	SessionsStarted     prometheus.Counter
	SessionsTerminated  *prometheus.CounterVec // disposition: returned|retained
	Transactions        *prometheus.CounterVec // type, outcome: completed|declined|failed|abandoned
	PinFailures         prometheus.Counter
	CardsRetained       prometheus.Counter
	PeripheralFaults    *prometheus.CounterVec // device: dispenser|printer|envelope_slot
	ReconciliationCases prometheus.Counter
}

// New registers all terminal collectors on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SessionsStarted: f.NewCounter(prometheus.CounterOpts{
			Name: "atm_sessions_started_total",
			Help: "Customer sessions started (card insertions accepted).",
		}),
		SessionsTerminated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "atm_sessions_terminated_total",
			Help: "Customer sessions terminated, by card disposition.",
		}, []string{"disposition"}),
		Transactions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "atm_transactions_total",
			Help: "Transactions processed, by type and outcome.",
		}, []string{"type", "outcome"}),
		PinFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "atm_pin_failures_total",
			Help: "Rejected PIN attempts.",
		}),
		CardsRetained: f.NewCounter(prometheus.CounterOpts{
			Name: "atm_cards_retained_total",
			Help: "Cards retained after repeated PIN failure.",
		}),
		PeripheralFaults: f.NewCounterVec(prometheus.CounterOpts{
			Name: "atm_peripheral_faults_total",
			Help: "Hardware faults reported by peripherals, by device.",
		}, []string{"device"}),
		ReconciliationCases: f.NewCounter(prometheus.CounterOpts{
			Name: "atm_reconciliation_cases_total",
			Help: "Ambiguous outcomes escalated for manual reconciliation.",
		}),
	}
}
