package metrics

import (
	"context"

	"github.com/nyxa-games/emberdeep/internal/event"
	"github.com/nyxa-games/emberdeep/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.BattleStarted,
		event.BattleTurnResolved,
		event.BattleVictory,
		event.BattleDefeat,
		event.QuestAccepted,
		event.QuestWorkStarted,
		event.QuestWorkStopped,
		event.QuestProgressed,
		event.QuestCompleted,
		event.RewardSettled,
		event.ProfileLevelUp,
		event.ProfileCreated,
		event.DungeonCompleted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.BattleTurnResolved:
		BattleTurnsResolved.Inc()

	case event.BattleVictory:
		BattlesCompleted.WithLabelValues("victory").Inc()

	case event.BattleDefeat:
		BattlesCompleted.WithLabelValues("defeat").Inc()

	case event.QuestProgressed:
		QuestTicks.Inc()

	case event.RewardSettled:
		payload, err := event.DecodePayload[event.RewardSettledPayloadV1](evt.Payload)
		if err != nil {
			log.Debug("Failed to decode reward payload for metrics", "error", err)
			return nil
		}
		RewardsSettled.WithLabelValues(payload.Source).Inc()
		ExperienceGranted.Add(float64(payload.Experience))
		GoldGranted.Add(float64(payload.Gold))

	case event.ProfileLevelUp:
		LevelUps.Inc()
	}

	return nil
}
