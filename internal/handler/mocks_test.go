package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nyxa-games/emberdeep/internal/domain"
	"github.com/nyxa-games/emberdeep/internal/profile"
)

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Create(ctx context.Context, username string, class domain.CharacterClass) (*domain.Profile, error) {
	args := m.Called(ctx, username, class)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) Get(ctx context.Context, profileID string) (*profile.View, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.View), args.Error(1)
}

func (m *MockProfileService) GetByUsername(ctx context.Context, username string) (*profile.View, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.View), args.Error(1)
}

func (m *MockProfileService) Inventory(ctx context.Context, profileID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockProfileService) SetEquipped(ctx context.Context, profileID, inventoryItemID string, equipped bool) error {
	args := m.Called(ctx, profileID, inventoryItemID, equipped)
	return args.Error(0)
}

type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Record(ctx context.Context, profileID, activityType, description string) {
	m.Called(ctx, profileID, activityType, description)
}

func (m *MockActivityService) Feed(ctx context.Context, profileID string, limit int) ([]domain.ActivityEntry, error) {
	args := m.Called(ctx, profileID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityEntry), args.Error(1)
}

type MockBattleService struct {
	mock.Mock
}

func (m *MockBattleService) ListDungeons(ctx context.Context) ([]domain.Dungeon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Dungeon), args.Error(1)
}

func (m *MockBattleService) GetDungeonProgress(ctx context.Context, profileID, dungeonID string) (*domain.DungeonProgress, error) {
	args := m.Called(ctx, profileID, dungeonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DungeonProgress), args.Error(1)
}

func (m *MockBattleService) EnterDungeon(ctx context.Context, profileID, dungeonID string) (*domain.Battle, error) {
	args := m.Called(ctx, profileID, dungeonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Battle), args.Error(1)
}

func (m *MockBattleService) GetBattle(ctx context.Context, battleID string) (*domain.Battle, error) {
	args := m.Called(ctx, battleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Battle), args.Error(1)
}

func (m *MockBattleService) GetActiveBattle(ctx context.Context, profileID string) (*domain.Battle, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Battle), args.Error(1)
}

func (m *MockBattleService) ResolveTurn(ctx context.Context, battleID string) (*domain.Battle, error) {
	args := m.Called(ctx, battleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Battle), args.Error(1)
}

func (m *MockBattleService) SweepActiveBattles(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBattleService) RecoverUnsettled(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockQuestService struct {
	mock.Mock
}

func (m *MockQuestService) GetQuestBoard(ctx context.Context, profileID string) ([]domain.Quest, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quest), args.Error(1)
}

func (m *MockQuestService) Accept(ctx context.Context, profileID, questID string) (*domain.PlayerQuest, error) {
	args := m.Called(ctx, profileID, questID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerQuest), args.Error(1)
}

func (m *MockQuestService) SetWorking(ctx context.Context, profileID, playerQuestID string, working bool) (*domain.PlayerQuest, error) {
	args := m.Called(ctx, profileID, playerQuestID, working)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerQuest), args.Error(1)
}

func (m *MockQuestService) Complete(ctx context.Context, profileID, playerQuestID string) (*domain.PlayerQuest, error) {
	args := m.Called(ctx, profileID, playerQuestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerQuest), args.Error(1)
}

func (m *MockQuestService) GetPlayerQuest(ctx context.Context, profileID, playerQuestID string) (*domain.PlayerQuest, error) {
	args := m.Called(ctx, profileID, playerQuestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerQuest), args.Error(1)
}

func (m *MockQuestService) ListPlayerQuests(ctx context.Context, profileID string, status *domain.QuestStatus) ([]domain.PlayerQuest, error) {
	args := m.Called(ctx, profileID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlayerQuest), args.Error(1)
}

func (m *MockQuestService) AccrueProgress(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
