package bootstrap

import "time"

// Resilient publisher defaults applied when the environment leaves them unset
const (
	EventDefaultMaxRetries = 3
	EventDefaultRetryDelay = 1 * time.Second
)

// DirPermission is the mode used when creating runtime directories
const DirPermission = 0755

// Log messages for startup and shutdown
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateDeadLetterWriter   = "failed to create dead-letter writer"
	LogMsgMetricsCollectorRegistered     = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics          = "failed to register metrics collector"
	LogMsgShuttingDownServer             = "Shutting down server..."
	LogMsgServerForcedShutdown           = "Server forced to shutdown"
	LogMsgShuttingDownScheduler          = "Shutting down scheduler..."
	LogMsgShuttingDownWorkerPool         = "Shutting down worker pool..."
	LogMsgShuttingDownEventStream        = "Shutting down event stream..."
	LogMsgClosingDeadLetterWriter        = "Closing dead-letter writer..."
	LogMsgDeadLetterCloseFailed          = "Dead-letter writer close failed"
	LogMsgServerStopped                  = "Server stopped"
)
