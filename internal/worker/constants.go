package worker

// DefaultQueueSize bounds the job queue; Enqueue blocks once it fills, which
// backpressures the scheduler instead of stacking sweep runs
const DefaultQueueSize = 64

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for sweep jobs
const (
	LogMsgBattleSweepFailed   = "Battle sweep failed"
	LogMsgQuestSweepFailed    = "Quest sweep failed"
	LogMsgRecoverySweepFailed = "Unsettled victory recovery failed"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
