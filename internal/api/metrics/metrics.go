// Package metrics defines and registers all custom Prometheus metrics for the
// hotel admin console. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry at package init through
// promauto; /metrics serves them alongside the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hotelops/hotel-console/internal/core/domain"
)

const namespace = "hotel_console"

// ── Backend client metrics ────────────────────────────────────────────────────

// BackendRequestsTotal counts calls made to the PMS backend.
// Labels:
//   - op: client operation (e.g. "users.list", "auth.login")
//   - outcome: "ok", "http_error", "transport_error", "decode_error" or
//     "invalid_request"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests sent to the PMS backend.",
	},
	[]string{"op", "outcome"},
)

// BackendRequestDuration measures backend round-trip latency per operation.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of PMS backend requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionTransitionsTotal counts session lifecycle transitions.
// Label:
//   - kind: "session_restored", "session_rejected", "login_succeeded",
//     "login_failed" or "logout"
var SessionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_transitions_total",
		Help:      "Total number of session lifecycle transitions, by kind.",
	},
	[]string{"kind"},
)

// AuthenticatedSessions tracks in-memory sessions currently authenticated.
var AuthenticatedSessions = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "authenticated_sessions",
		Help:      "Number of in-memory browsing contexts with an authenticated session.",
	},
)

// GuardDecisionsTotal counts route guard outcomes.
// Label:
//   - decision: "render", "loading" or "redirect"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions.",
	},
	[]string{"decision"},
)

// SubmitGuardTotal counts double-submit checks.
// Label:
//   - result: "hit" (duplicate, rejected) or "miss" (first submission)
var SubmitGuardTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submit_guard_total",
		Help:      "Total number of submit guard checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of audit events waiting per worker.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of session events pending in each audit worker channel.",
	},
	[]string{"worker_id"},
)

// AuditErrorsTotal counts audit events that could not be persisted or were dropped.
// Label:
//   - reason: "insert_failed", "queue_full" or "shutdown_dropped"
var AuditErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of session audit events that failed.",
	},
	[]string{"reason"},
)

// TrackAuthenticated keeps AuthenticatedSessions in step with session
// transitions. It is registered as an observer on every session manager.
func TrackAuthenticated(prev, next domain.Session) {
	switch {
	case !prev.IsAuthenticated && next.IsAuthenticated:
		AuthenticatedSessions.Inc()
	case prev.IsAuthenticated && !next.IsAuthenticated:
		AuthenticatedSessions.Dec()
	}
}
