// Package metrics defines and registers all custom Prometheus metrics for
// the engagement API. It is the single source of truth for metric names,
// labels, and help strings; metrics register themselves with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "kachra"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - result: "success" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Citizen engagement metrics ────────────────────────────────────────────────

// ScansTotal counts bin scan attempts.
// Label:
//   - result: "accepted", "duplicate", or "invalid_code"
var ScansTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bin_scans_total",
		Help:      "Total number of bin QR scans, by outcome.",
	},
	[]string{"result"},
)

// RedemptionsTotal counts reward redemption attempts.
// Label:
//   - result: "success", "insufficient_points", or "unknown_reward"
var RedemptionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reward_redemptions_total",
		Help:      "Total number of reward redemptions, by outcome.",
	},
	[]string{"result"},
)

// ClassificationDuration measures how long an image classification takes
// end-to-end, including the simulated backend latency.
var ClassificationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "classification_duration_seconds",
		Help:      "Duration of waste image classification requests.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Fleet metrics ─────────────────────────────────────────────────────────────

// ReportsAppliedTotal counts fill-level reports applied to the fleet state.
// Label:
//   - source: "citizen_scan" or "staff_app"
var ReportsAppliedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bin_reports_applied_total",
		Help:      "Total number of bin fill-level reports applied, by source.",
	},
	[]string{"source"},
)

// ReportsDroppedTotal counts reports that could not be applied.
// Label:
//   - reason: "bin_not_found" or "apply_failed"
var ReportsDroppedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bin_reports_dropped_total",
		Help:      "Total number of bin fill-level reports dropped, by reason.",
	},
	[]string{"reason"},
)

// ReportQueueDepth tracks the number of reports waiting in each worker
// channel.
// Label:
//   - worker_id: numeric worker index
var ReportQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "bin_report_queue_depth",
		Help:      "Current number of reports pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
