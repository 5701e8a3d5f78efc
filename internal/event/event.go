package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Game event types
const (
	BattleStarted      Type = "battle.started"
	BattleTurnResolved Type = "battle.turn"
	BattleVictory      Type = "battle.victory"
	BattleDefeat       Type = "battle.defeat"

	QuestAccepted    Type = "quest.accepted"
	QuestWorkStarted Type = "quest.work_started"
	QuestWorkStopped Type = "quest.work_stopped"
	QuestProgressed  Type = "quest.progress"
	QuestCompleted   Type = "quest.completed"

	RewardSettled    Type = "reward.settled"
	ProfileLevelUp   Type = "profile.level_up"
	ProfileCreated   Type = "profile.created"
	DungeonCompleted Type = "dungeon.completed"
)

// Typed event payloads

// BattleStartedPayloadV1 is the typed payload for battle start events
type BattleStartedPayloadV1 struct {
	BattleID     string `json:"battle_id"`
	ProfileID    string `json:"profile_id"`
	DungeonID    string `json:"dungeon_id"`
	DungeonLevel int    `json:"dungeon_level"`
	MonsterName  string `json:"monster_name"`
	Timestamp    int64  `json:"timestamp"`
}

// BattleTurnPayloadV1 is the typed payload for resolved turn events
type BattleTurnPayloadV1 struct {
	BattleID      string `json:"battle_id"`
	ProfileID     string `json:"profile_id"`
	Turn          int    `json:"turn"`
	PlayerDamage  int    `json:"player_damage"`
	MonsterDamage int    `json:"monster_damage"`
	PlayerHealth  int    `json:"player_health"`
	MonsterHealth int    `json:"monster_health"`
}

// BattleEndedPayloadV1 is the typed payload for battle victory and defeat events
type BattleEndedPayloadV1 struct {
	BattleID    string   `json:"battle_id"`
	ProfileID   string   `json:"profile_id"`
	MonsterName string   `json:"monster_name"`
	Turns       int      `json:"turns"`
	Experience  int64    `json:"experience,omitempty"`
	Gold        int64    `json:"gold,omitempty"`
	Items       []string `json:"items,omitempty"`
}

// QuestPayloadV1 is the typed payload for quest lifecycle events
type QuestPayloadV1 struct {
	PlayerQuestID string `json:"player_quest_id"`
	ProfileID     string `json:"profile_id"`
	QuestID       string `json:"quest_id"`
	Title         string `json:"title"`
}

// QuestProgressPayloadV1 is the typed payload for quest progress events
type QuestProgressPayloadV1 struct {
	PlayerQuestID string `json:"player_quest_id"`
	ProfileID     string `json:"profile_id"`
	Title         string `json:"title"`
	Progress      int    `json:"progress"`
	Delta         int    `json:"delta"`
}

// RewardSettledPayloadV1 is the typed payload for reward settlement events
type RewardSettledPayloadV1 struct {
	ProfileID  string   `json:"profile_id"`
	Source     string   `json:"source"` // "battle" or "quest"
	SourceID   string   `json:"source_id"`
	Experience int64    `json:"experience"`
	Gold       int64    `json:"gold"`
	Items      []string `json:"items,omitempty"`
}

// LevelUpPayloadV1 is the typed payload for level up events
type LevelUpPayloadV1 struct {
	ProfileID string `json:"profile_id"`
	OldLevel  int    `json:"old_level"`
	NewLevel  int    `json:"new_level"`
}

// ProfileCreatedPayloadV1 is the typed payload for profile creation events
type ProfileCreatedPayloadV1 struct {
	ProfileID string `json:"profile_id"`
	Username  string `json:"username"`
	Class     string `json:"class"`
}

// DungeonCompletedPayloadV1 is the typed payload for dungeon completion events
type DungeonCompletedPayloadV1 struct {
	ProfileID string `json:"profile_id"`
	DungeonID string `json:"dungeon_id"`
}

// Type-safe event constructors

// NewBattleStartedEvent creates a new battle started event
func NewBattleStartedEvent(battleID, profileID, dungeonID string, dungeonLevel int, monsterName string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BattleStarted,
		Payload: BattleStartedPayloadV1{
			BattleID:     battleID,
			ProfileID:    profileID,
			DungeonID:    dungeonID,
			DungeonLevel: dungeonLevel,
			MonsterName:  monsterName,
			Timestamp:    time.Now().Unix(),
		},
	}
}

// NewBattleTurnEvent creates a new turn resolved event
func NewBattleTurnEvent(battleID, profileID string, turn, playerDamage, monsterDamage, playerHealth, monsterHealth int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BattleTurnResolved,
		Payload: BattleTurnPayloadV1{
			BattleID:      battleID,
			ProfileID:     profileID,
			Turn:          turn,
			PlayerDamage:  playerDamage,
			MonsterDamage: monsterDamage,
			PlayerHealth:  playerHealth,
			MonsterHealth: monsterHealth,
		},
	}
}

// NewBattleEndedEvent creates a victory or defeat event from the closed battle
func NewBattleEndedEvent(eventType Type, payload BattleEndedPayloadV1) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: payload,
	}
}

// NewQuestEvent creates a quest lifecycle event
func NewQuestEvent(eventType Type, playerQuestID, profileID, questID, title string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: QuestPayloadV1{
			PlayerQuestID: playerQuestID,
			ProfileID:     profileID,
			QuestID:       questID,
			Title:         title,
		},
	}
}

// NewQuestProgressEvent creates a quest progress event
func NewQuestProgressEvent(playerQuestID, profileID, title string, progress, delta int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    QuestProgressed,
		Payload: QuestProgressPayloadV1{
			PlayerQuestID: playerQuestID,
			ProfileID:     profileID,
			Title:         title,
			Progress:      progress,
			Delta:         delta,
		},
	}
}

// NewRewardSettledEvent creates a reward settlement event
func NewRewardSettledEvent(profileID, source, sourceID string, experience, gold int64, items []string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RewardSettled,
		Payload: RewardSettledPayloadV1{
			ProfileID:  profileID,
			Source:     source,
			SourceID:   sourceID,
			Experience: experience,
			Gold:       gold,
			Items:      items,
		},
	}
}

// NewLevelUpEvent creates a level up event
func NewLevelUpEvent(profileID string, oldLevel, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ProfileLevelUp,
		Payload: LevelUpPayloadV1{
			ProfileID: profileID,
			OldLevel:  oldLevel,
			NewLevel:  newLevel,
		},
	}
}

// NewProfileCreatedEvent creates a profile creation event
func NewProfileCreatedEvent(profileID, username, class string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ProfileCreated,
		Payload: ProfileCreatedPayloadV1{
			ProfileID: profileID,
			Username:  username,
			Class:     class,
		},
	}
}

// NewDungeonCompletedEvent creates a dungeon completion event
func NewDungeonCompletedEvent(profileID, dungeonID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DungeonCompleted,
		Payload: DungeonCompletedPayloadV1{
			ProfileID: profileID,
			DungeonID: dungeonID,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// in subscription order; every handler sees the event even when an earlier
// one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
