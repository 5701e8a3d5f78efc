package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameBattleTurnsResolved = "battle_turns_resolved_total"
	MetricNameBattlesCompleted    = "battles_completed_total"
	MetricNameQuestTicks          = "quest_ticks_total"
	MetricNameQuestsCompleted     = "quests_completed_total"
	MetricNameRewardsSettled      = "rewards_settled_total"
	MetricNameTickConflicts       = "tick_conflicts_total"
	MetricNameExperienceGranted   = "experience_granted_total"
	MetricNameGoldGranted         = "gold_granted_total"
	MetricNameLevelUps            = "level_ups_total"
	MetricNameSSEClients          = "sse_clients_connected"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextBattleTurnsResolved = "Total number of battle turns resolved"
	HelpTextBattlesCompleted    = "Total number of battles completed by outcome"
	HelpTextQuestTicks          = "Total number of quest progress ticks applied"
	HelpTextQuestsCompleted     = "Total number of quests completed by difficulty"
	HelpTextRewardsSettled      = "Total number of reward settlements applied by source"
	HelpTextTickConflicts       = "Total number of conditional writes lost to concurrent writers"
	HelpTextExperienceGranted   = "Total experience granted through settlements"
	HelpTextGoldGranted         = "Total gold granted through settlements"
	HelpTextLevelUps            = "Total number of profile level ups"
	HelpTextSSEClients          = "Current number of connected SSE clients"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelOutcome    = "outcome"
	LabelDifficulty = "difficulty"
	LabelSource     = "source"
	LabelKind       = "kind"
)

// Tick conflict kinds
const (
	ConflictKindBattle = "battle"
	ConflictKindQuest  = "quest"
)

// Settlement sources
const (
	SourceBattle = "battle"
	SourceQuest  = "quest"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
