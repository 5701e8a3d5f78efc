package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nyxa-games/emberdeep/internal/config"
	"github.com/nyxa-games/emberdeep/internal/event"
	"github.com/nyxa-games/emberdeep/internal/metrics"
)

// InitializeEventSystem creates the event bus, the dead-letter writer and the
// resilient publisher that services publish through. Returns the raw bus for
// subscribers, the publisher for producers, and the writer for shutdown.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, *event.DeadLetterWriter, error) {
	eventBus := event.NewMemoryBus()

	if dir := filepath.Dir(cfg.DeadLetterPath); dir != "." {
		if err := os.MkdirAll(dir, DirPermission); err != nil {
			return nil, nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
		}
	}

	deadLetter, err := event.NewDeadLetterWriter(cfg.DeadLetterPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterWriter, err)
	}

	publisher := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		MaxRetries: EventDefaultMaxRetries,
		RetryDelay: EventDefaultRetryDelay,
		DeadLetter: deadLetter,
	})

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", cfg.DeadLetterPath)

	return eventBus, publisher, deadLetter, nil
}

// RegisterEventHandlers attaches the event-driven metrics collector to the bus
func RegisterEventHandlers(eventBus event.Bus) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(eventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	return nil
}
