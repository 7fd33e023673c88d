package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// NotificationEvents counts notification commands by event (created|updated|toggled|deleted|sent).
	NotificationEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketadmin_notification_events_total",
			Help: "Total number of notification record commands applied",
		},
		[]string{"event"},
	)

	// PayoutDecisions counts payout review outcomes by payee kind and decision (approved|rejected).
	PayoutDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketadmin_payout_decisions_total",
			Help: "Total number of payout review decisions",
		},
		[]string{"payee", "decision"},
	)

	// DisputeTransitions counts dispute state transitions by target status.
	DisputeTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketadmin_dispute_transitions_total",
			Help: "Total number of dispute status transitions",
		},
		[]string{"status"},
	)

	// ModerationActions counts member, listing and affiliate moderation commands.
	ModerationActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketadmin_moderation_actions_total",
			Help: "Total number of moderation actions by entity and action",
		},
		[]string{"entity", "action"},
	)

	// PendingPayouts tracks payout requests awaiting review.
	PendingPayouts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "marketadmin_pending_payouts",
			Help: "Number of payout requests awaiting review",
		},
	)

	// OpenDisputes tracks disputes that are still open.
	OpenDisputes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "marketadmin_open_disputes",
			Help: "Number of open disputes",
		},
	)

	// ActiveNotifications tracks notification records flagged active.
	ActiveNotifications = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "marketadmin_active_notifications",
			Help: "Number of active notification records",
		},
	)

	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marketadmin_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
