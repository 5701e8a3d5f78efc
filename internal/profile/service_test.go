package profile

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nyxa-games/emberdeep/internal/domain"
	"github.com/nyxa-games/emberdeep/internal/event"
)

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

type capturingBus struct {
	mu     sync.Mutex
	events []event.Event
}

func (b *capturingBus) Publish(ctx context.Context, evt event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
	return nil
}

func (b *capturingBus) Subscribe(eventType event.Type, handler event.Handler) {}

func (b *capturingBus) byType(eventType event.Type) []event.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []event.Event
	for _, evt := range b.events {
		if evt.Type == eventType {
			out = append(out, evt)
		}
	}
	return out
}

func TestCreate(t *testing.T) {
	t.Run("creates profile and publishes event", func(t *testing.T) {
		repo := new(MockProfileRepository)
		inv := new(MockInventoryRepository)
		bus := &capturingBus{}
		svc := NewService(repo, inv, bus)

		created := &domain.Profile{ID: "p1", Username: "aria", Class: domain.ClassMage}
		repo.On("CreateProfile", mock.Anything, "aria", domain.ClassMage).Return(created, nil)

		got, err := svc.Create(context.Background(), "aria", domain.ClassMage)

		require.NoError(t, err)
		assert.Equal(t, "p1", got.ID)

		published := bus.byType(event.ProfileCreated)
		require.Len(t, published, 1)
		payload := published[0].Payload.(event.ProfileCreatedPayloadV1)
		assert.Equal(t, "aria", payload.Username)
		assert.Equal(t, "mage", payload.Class)
		repo.AssertExpectations(t)
	})

	t.Run("rejects unknown class", func(t *testing.T) {
		repo := new(MockProfileRepository)
		svc := NewService(repo, new(MockInventoryRepository), &capturingBus{})

		_, err := svc.Create(context.Background(), "aria", "necromancer")

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		repo.AssertNotCalled(t, "CreateProfile")
	})

	t.Run("rejects blank username", func(t *testing.T) {
		repo := new(MockProfileRepository)
		svc := NewService(repo, new(MockInventoryRepository), &capturingBus{})

		_, err := svc.Create(context.Background(), "   ", domain.ClassWarrior)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("propagates duplicate username", func(t *testing.T) {
		repo := new(MockProfileRepository)
		svc := NewService(repo, new(MockInventoryRepository), &capturingBus{})

		repo.On("CreateProfile", mock.Anything, "aria", domain.ClassMage).Return(nil, domain.ErrUsernameTaken)

		_, err := svc.Create(context.Background(), "aria", domain.ClassMage)

		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})
}

func TestGet(t *testing.T) {
	t.Run("derives level from experience", func(t *testing.T) {
		repo := new(MockProfileRepository)
		inv := new(MockInventoryRepository)
		svc := NewService(repo, inv, &capturingBus{})

		// 300 cumulative experience clears levels 1 and 2 exactly
		repo.On("GetProfile", mock.Anything, "p1").Return(&domain.Profile{ID: "p1", Experience: 300, Level: 1}, nil)
		inv.On("EquippedBonus", mock.Anything, "p1").Return(7, nil)

		view, err := svc.Get(context.Background(), "p1")

		require.NoError(t, err)
		assert.Equal(t, 3, view.Level)
		assert.Equal(t, 3, view.Progression.Level)
		assert.Equal(t, int64(0), view.Progression.CurrentLevelExp)
		assert.Equal(t, int64(300), view.Progression.ExpForNextLevel)
		assert.Equal(t, 7, view.EquipmentBonus)
	})

	t.Run("tolerates failed bonus read", func(t *testing.T) {
		repo := new(MockProfileRepository)
		inv := new(MockInventoryRepository)
		svc := NewService(repo, inv, &capturingBus{})

		repo.On("GetProfile", mock.Anything, "p1").Return(&domain.Profile{ID: "p1", Experience: 50}, nil)
		inv.On("EquippedBonus", mock.Anything, "p1").Return(0, errors.New("db down"))

		view, err := svc.Get(context.Background(), "p1")

		require.NoError(t, err)
		assert.Equal(t, 0, view.EquipmentBonus)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockProfileRepository)
		svc := NewService(repo, new(MockInventoryRepository), &capturingBus{})

		repo.On("GetProfile", mock.Anything, "missing").Return(nil, domain.ErrProfileNotFound)

		_, err := svc.Get(context.Background(), "missing")

		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})
}

func TestInventory(t *testing.T) {
	t.Run("lists items for existing profile", func(t *testing.T) {
		repo := new(MockProfileRepository)
		inv := new(MockInventoryRepository)
		svc := NewService(repo, inv, &capturingBus{})

		repo.On("GetProfile", mock.Anything, "p1").Return(&domain.Profile{ID: "p1"}, nil)
		inv.On("ListInventory", mock.Anything, "p1").Return([]domain.InventoryItem{{ID: "i1", ItemID: "sword"}}, nil)

		items, err := svc.Inventory(context.Background(), "p1")

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "sword", items[0].ItemID)
	})

	t.Run("requires profile to exist", func(t *testing.T) {
		repo := new(MockProfileRepository)
		inv := new(MockInventoryRepository)
		svc := NewService(repo, inv, &capturingBus{})

		repo.On("GetProfile", mock.Anything, "missing").Return(nil, domain.ErrProfileNotFound)

		_, err := svc.Inventory(context.Background(), "missing")

		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
		inv.AssertNotCalled(t, "ListInventory")
	})
}

func TestSetEquipped(t *testing.T) {
	t.Run("equips owned item", func(t *testing.T) {
		inv := new(MockInventoryRepository)
		svc := NewService(new(MockProfileRepository), inv, &capturingBus{})

		inv.On("SetEquipped", mock.Anything, "p1", "inv1", true).Return(nil)

		err := svc.SetEquipped(context.Background(), "p1", "inv1", true)

		require.NoError(t, err)
		inv.AssertExpectations(t)
	})

	t.Run("propagates ownership failures", func(t *testing.T) {
		inv := new(MockInventoryRepository)
		svc := NewService(new(MockProfileRepository), inv, &capturingBus{})

		inv.On("SetEquipped", mock.Anything, "p1", "other", false).Return(domain.ErrItemNotFound)

		err := svc.SetEquipped(context.Background(), "p1", "other", false)

		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}
