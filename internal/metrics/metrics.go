package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BirthdayChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "birthday_checks_total",
			Help: "Total number of daily birthday checks by result",
		},
		[]string{"result"},
	)

	BirthdayCheckDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "birthday_check_duration_seconds",
			Help:    "Duration of the daily birthday check",
			Buckets: prometheus.DefBuckets,
		},
	)

	AnnouncementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "birthday_announcements_total",
			Help: "Total number of birthday announcements sent",
		},
		[]string{"kind"},
	)

	RoleChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "birthday_role_changes_total",
			Help: "Total number of birthday role changes by action and result",
		},
		[]string{"action", "result"},
	)

	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "birthday_commands_total",
			Help: "Total number of bot commands handled by command and result",
		},
		[]string{"command", "result"},
	)

	RateLimitBlocked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "birthday_commands_rate_limited_total",
			Help: "Total number of commands rejected by the per-user rate limiter",
		},
	)

	BotConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bot_connected",
			Help: "Whether the bot is connected to the chat platform (1) or not (0)",
		},
	)

	BotLatency = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bot_latency_seconds",
			Help: "Last measured round trip latency to the chat platform",
		},
	)
)

const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultSkipped = "skipped"
	ResultMissing = "missing"
)
