package bootstrap

import (
	"context"
	"log/slog"

	"github.com/nyxa-games/emberdeep/internal/event"
	"github.com/nyxa-games/emberdeep/internal/scheduler"
	"github.com/nyxa-games/emberdeep/internal/server"
	"github.com/nyxa-games/emberdeep/internal/sse"
	"github.com/nyxa-games/emberdeep/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server     *server.Server
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
	SSEHub     *sse.Hub
	DeadLetter *event.DeadLetterWriter
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler (stop enqueueing new sweep jobs)
// 3. Worker pool (drain queued jobs)
// 4. SSE hub (disconnect stream clients)
// 5. Dead-letter writer (flush the failure log)
//
// Errors during shutdown are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Scheduler != nil {
		slog.Info(LogMsgShuttingDownScheduler)
		components.Scheduler.Stop()
	}

	if components.WorkerPool != nil {
		slog.Info(LogMsgShuttingDownWorkerPool)
		components.WorkerPool.Stop()
	}

	if components.SSEHub != nil {
		slog.Info(LogMsgShuttingDownEventStream)
		components.SSEHub.Stop()
	}

	if components.DeadLetter != nil {
		slog.Info(LogMsgClosingDeadLetterWriter)
		if err := components.DeadLetter.Close(); err != nil {
			slog.Error(LogMsgDeadLetterCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
