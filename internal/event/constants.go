package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Settlement sources carried in RewardSettledPayloadV1
const (
	SourceBattle = "battle"
	SourceQuest  = "quest"
)

// Dead letter file configuration
const (
	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0644
)

// Log message constants
const (
	LogMsgEventPublishFailed = "Failed to publish event, initiating async retry"
	LogMsgEventRetryFailed   = "Event retry failed"
	LogMsgEventRetryWorked   = "Successfully published event after retry"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
