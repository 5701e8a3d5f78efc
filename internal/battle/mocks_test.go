package battle

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/nyxa-games/emberdeep/internal/domain"
	"github.com/nyxa-games/emberdeep/internal/event"
	"github.com/nyxa-games/emberdeep/internal/repository"
)

// fixedRNG always draws the same value; 0.5 cancels the damage variance
type fixedRNG struct {
	value float64
}

func (r fixedRNG) Float64() float64 { return r.value }

// MockBattleRepository
type MockBattleRepository struct {
	mock.Mock
}

func (m *MockBattleRepository) CreateBattle(ctx context.Context, battle *domain.Battle) (*domain.Battle, error) {
	args := m.Called(ctx, battle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Battle), args.Error(1)
}

func (m *MockBattleRepository) GetBattle(ctx context.Context, battleID string) (*domain.Battle, error) {
	args := m.Called(ctx, battleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Battle), args.Error(1)
}

func (m *MockBattleRepository) GetActiveBattle(ctx context.Context, profileID string) (*domain.Battle, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Battle), args.Error(1)
}

func (m *MockBattleRepository) ListActiveBattles(ctx context.Context) ([]domain.Battle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Battle), args.Error(1)
}

func (m *MockBattleRepository) AppendTurn(ctx context.Context, battleID string, turn domain.BattleTurn, newStatus domain.BattleStatus, rewards *domain.BattleRewards) error {
	args := m.Called(ctx, battleID, turn, newStatus, rewards)
	return args.Error(0)
}

func (m *MockBattleRepository) ListUnsettledVictories(ctx context.Context) ([]domain.Battle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Battle), args.Error(1)
}

// MockDungeonRepository
type MockDungeonRepository struct {
	mock.Mock
}

func (m *MockDungeonRepository) GetDungeon(ctx context.Context, dungeonID string) (*domain.Dungeon, error) {
	args := m.Called(ctx, dungeonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dungeon), args.Error(1)
}

func (m *MockDungeonRepository) ListDungeons(ctx context.Context) ([]domain.Dungeon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Dungeon), args.Error(1)
}

func (m *MockDungeonRepository) GetDungeonLevel(ctx context.Context, dungeonID string, levelNumber int) (*domain.DungeonLevel, error) {
	args := m.Called(ctx, dungeonID, levelNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DungeonLevel), args.Error(1)
}

func (m *MockDungeonRepository) GetMonster(ctx context.Context, monsterID string) (*domain.Monster, error) {
	args := m.Called(ctx, monsterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Monster), args.Error(1)
}

func (m *MockDungeonRepository) GetProgress(ctx context.Context, profileID, dungeonID string) (*domain.DungeonProgress, error) {
	args := m.Called(ctx, profileID, dungeonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DungeonProgress), args.Error(1)
}

func (m *MockDungeonRepository) EnsureProgress(ctx context.Context, profileID, dungeonID string) (*domain.DungeonProgress, error) {
	args := m.Called(ctx, profileID, dungeonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DungeonProgress), args.Error(1)
}

func (m *MockDungeonRepository) AdvanceProgress(ctx context.Context, profileID, dungeonID string, clearedLevel int) error {
	args := m.Called(ctx, profileID, dungeonID, clearedLevel)
	return args.Error(0)
}

// MockProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) CreateProfile(ctx context.Context, username string, class domain.CharacterClass) (*domain.Profile, error) {
	args := m.Called(ctx, username, class)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetProfile(ctx context.Context, profileID string) (*domain.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetProfileByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

// MockInventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) ListInventory(ctx context.Context, profileID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) EquippedBonus(ctx context.Context, profileID string) (int, error) {
	args := m.Called(ctx, profileID)
	return args.Int(0), args.Error(1)
}

func (m *MockInventoryRepository) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockInventoryRepository) SetEquipped(ctx context.Context, profileID, inventoryItemID string, equipped bool) error {
	args := m.Called(ctx, profileID, inventoryItemID, equipped)
	return args.Error(0)
}

// MockRewardService
type MockRewardService struct {
	mock.Mock
}

func (m *MockRewardService) SettleBattle(ctx context.Context, battle *domain.Battle) (repository.SettlementResult, error) {
	args := m.Called(ctx, battle)
	return args.Get(0).(repository.SettlementResult), args.Error(1)
}

func (m *MockRewardService) SettleQuest(ctx context.Context, playerQuest *domain.PlayerQuest) (repository.SettlementResult, error) {
	args := m.Called(ctx, playerQuest)
	return args.Get(0).(repository.SettlementResult), args.Error(1)
}

// MockActivityService
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

// capturingBus records published events for assertions
type capturingBus struct {
	mu     sync.Mutex
	events []event.Event
}

func (b *capturingBus) Publish(_ context.Context, evt event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
	return nil
}

func (b *capturingBus) Subscribe(event.Type, event.Handler) {}

func (b *capturingBus) byType(t event.Type) []event.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []event.Event
	for _, evt := range b.events {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
}
