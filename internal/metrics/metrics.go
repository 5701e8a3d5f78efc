package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	BattleTurnsResolved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBattleTurnsResolved,
			Help: HelpTextBattleTurnsResolved,
		},
	)

	BattlesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBattlesCompleted,
			Help: HelpTextBattlesCompleted,
		},
		[]string{LabelOutcome},
	)

	QuestTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestTicks,
			Help: HelpTextQuestTicks,
		},
	)

	QuestsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestsCompleted,
			Help: HelpTextQuestsCompleted,
		},
		[]string{LabelDifficulty},
	)

	RewardsSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsSettled,
			Help: HelpTextRewardsSettled,
		},
		[]string{LabelSource},
	)

	TickConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTickConflicts,
			Help: HelpTextTickConflicts,
		},
		[]string{LabelKind},
	)

	ExperienceGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameExperienceGranted,
			Help: HelpTextExperienceGranted,
		},
	)

	GoldGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldGranted,
			Help: HelpTextGoldGranted,
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	SSEClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClients,
			Help: HelpTextSSEClients,
		},
	)
)
