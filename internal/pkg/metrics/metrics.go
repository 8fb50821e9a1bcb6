// Package metrics defines and registers all custom Prometheus metrics for the
// interview dashboard. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry through promauto
// when the package is loaded; HTTP request metrics come from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "interview"

// ── Upstream directory metrics ────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls to the candidate directory.
// Labels:
//   - endpoint: logical endpoint name (e.g. "list_users", "create_post")
//   - outcome: "ok", "not_found", "rejected", or "error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of candidate directory calls, by endpoint and outcome.",
	},
	[]string{"endpoint", "outcome"},
)

// UpstreamRequestDuration measures directory call latency including retries.
// Label:
//   - endpoint: logical endpoint name
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of candidate directory calls, retries included.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - role: the role chosen on the login form
//   - result: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by chosen role and result.",
	},
	[]string{"role", "result"},
)

// GuardDecisionsTotal counts route guard outcomes.
// Labels:
//   - required: the role the route is gated on
//   - decision: "allowed", "unauthenticated", or "denied"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions.",
	},
	[]string{"required", "decision"},
)

// ── View metrics ──────────────────────────────────────────────────────────────

// FeedbackSubmissionsTotal counts feedback submissions.
// Label:
//   - result: "remote" (created upstream), "fallback" (kept locally), or "rejected"
var FeedbackSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feedback_submissions_total",
		Help:      "Total number of feedback submissions, by result.",
	},
	[]string{"result"},
)

// RoleChangesTotal counts role reassignment requests.
// Label:
//   - result: "changed" or "unchanged"
var RoleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_changes_total",
		Help:      "Total number of role reassignment requests, by result.",
	},
	[]string{"result"},
)
