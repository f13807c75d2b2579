// Package metrics defines and registers the custom Prometheus metrics of the
// investment club API. It is the single source of truth for metric names,
// labels, and help strings.
//
// All metrics are registered with the default Prometheus registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "investment_club"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "duplicate" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of client registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - role: "admin", "client", or "none" when the credentials were rejected
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// ── Investment metrics ────────────────────────────────────────────────────────

// InvestmentMutationsTotal counts writes to the investment collection.
// Labels:
//   - op: "create", "update" or "delete"
//   - result: "ok", "not_found", "invalid" or "error"
var InvestmentMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "investment_mutations_total",
		Help:      "Total number of investment create/update/delete requests, by outcome.",
	},
	[]string{"op", "result"},
)
