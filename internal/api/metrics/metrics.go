// Package metrics defines and registers the custom Prometheus metrics for
// the society API. It is the single source of truth for metric names,
// labels, and help strings. Request-level metrics (latency, status codes)
// come from the echoprometheus middleware; everything here is domain
// specific.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "residenthub"

// SignupsTotal counts successful account registrations.
// Label:
//   - kind: "admin" (public signup) or "resident" (join-request submission)
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by kind.",
	},
	[]string{"kind"},
)

// LoginFailuresTotal counts rejected login attempts.
// Label:
//   - reason: "invalid_credentials" or "suspended"
var LoginFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of rejected login attempts, by reason.",
	},
	[]string{"reason"},
)

// JoinRequestsDecidedTotal counts join-request decisions.
// Label:
//   - decision: "approved" or "rejected"
var JoinRequestsDecidedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "join_requests_decided_total",
		Help:      "Total number of join requests decided, by decision.",
	},
	[]string{"decision"},
)

// MaintenancePaymentsTotal counts charges marked PAID.
var MaintenancePaymentsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "maintenance_payments_total",
		Help:      "Total number of maintenance charges marked as paid.",
	},
)

// MaintenanceOverdueMarked counts charges flipped DUE→OVERDUE by the sweep.
var MaintenanceOverdueMarked = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "maintenance_overdue_marked_total",
		Help:      "Total number of maintenance charges marked overdue by the sweep.",
	},
)

// IssuesCreatedTotal counts new issue tickets.
// Label:
//   - priority: LOW, MEDIUM, HIGH, or URGENT
var IssuesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "issues_created_total",
		Help:      "Total number of issues raised, by priority.",
	},
	[]string{"priority"},
)
