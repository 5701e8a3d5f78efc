package sse

import (
	"context"
	"log/slog"

	"github.com/nyxa-games/emberdeep/internal/event"
)

// forwardedTypes are the bus event types mirrored onto the SSE stream.
// Clients receive the internal payload verbatim under the bus type name.
var forwardedTypes = []event.Type{
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
	event.DungeonCompleted,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all forwarded event types
func (s *Subscriber) Subscribe() {
	for _, t := range forwardedTypes {
		s.bus.Subscribe(t, s.forward)
	}

	slog.Info("SSE subscriber registered for event types", "count", len(forwardedTypes))
}

func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)

	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
