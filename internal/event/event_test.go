package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(BattleVictory, func(ctx context.Context, evt Event) error {
		assert.Equal(t, BattleVictory, evt.Type)
		payload, err := DecodePayload[BattleEndedPayloadV1](evt.Payload)
		require.NoError(t, err)
		assert.Equal(t, "battle-1", payload.BattleID)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), NewBattleEndedEvent(BattleVictory, BattleEndedPayloadV1{
		BattleID:  "battle-1",
		ProfileID: "profile-1",
		Turns:     3,
	}))
	require.NoError(t, err)
	assert.True(t, handled, "handler should have run")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, evt Event) error {
		count++
		return nil
	}

	bus.Subscribe(QuestCompleted, handler)
	bus.Subscribe(QuestCompleted, handler)

	err := bus.Publish(context.Background(), NewQuestEvent(QuestCompleted, "pq-1", "profile-1", "quest-1", "Sweep the Ash Stables"))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMemoryBus_NoSubscribersIsFine(t *testing.T) {
	bus := NewMemoryBus()

	err := bus.Publish(context.Background(), NewLevelUpEvent("profile-1", 1, 2))
	assert.NoError(t, err)
}

func TestMemoryBus_HandlerErrorsCollected(t *testing.T) {
	bus := NewMemoryBus()
	secondRan := false

	bus.Subscribe(RewardSettled, func(ctx context.Context, evt Event) error {
		return errors.New("handler error")
	})
	bus.Subscribe(RewardSettled, func(ctx context.Context, evt Event) error {
		secondRan = true
		return nil
	})

	err := bus.Publish(context.Background(), NewRewardSettledEvent("profile-1", "battle", "battle-1", 100, 50, nil))
	assert.Error(t, err)
	assert.True(t, secondRan, "a failing handler must not starve later ones")
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	// Serialized payloads arrive as generic maps
	raw := map[string]interface{}{
		"profile_id": "profile-1",
		"old_level":  2,
		"new_level":  3,
	}

	payload, err := DecodePayload[LevelUpPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "profile-1", payload.ProfileID)
	assert.Equal(t, 2, payload.OldLevel)
	assert.Equal(t, 3, payload.NewLevel)
}
