// Package metrics defines the custom Prometheus metrics for the classroom
// backend. It is the single source of truth for metric names, labels, and
// help strings; registration happens automatically via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "classroom"

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registrations.
// Label:
//   - role: the requested role ("Student", "Mentor") or "error" on failure
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by requested role.",
	},
	[]string{"role"},
)

// MentorApprovalsTotal counts successful mentor approvals.
var MentorApprovalsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mentor_approvals_total",
		Help:      "Total number of mentor accounts approved.",
	},
)

// UsersDeletedTotal counts deleted accounts. Each deletion also denylists the
// account's outstanding tokens.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of accounts deleted by an admin.",
	},
)
