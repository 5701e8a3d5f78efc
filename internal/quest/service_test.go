package quest

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nyxa-games/emberdeep/internal/domain"
	"github.com/nyxa-games/emberdeep/internal/event"
	"github.com/nyxa-games/emberdeep/internal/level"
	"github.com/nyxa-games/emberdeep/internal/repository"
)

// MockQuestRepository
type MockQuestRepository struct {
	mock.Mock
}

func (m *MockQuestRepository) GetQuest(ctx context.Context, questID string) (*domain.Quest, error) {
	args := m.Called(ctx, questID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quest), args.Error(1)
}

func (m *MockQuestRepository) ListQuestBoard(ctx context.Context, profileID string, maxLevel int) ([]domain.Quest, error) {
	args := m.Called(ctx, profileID, maxLevel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quest), args.Error(1)
}

func (m *MockQuestRepository) AcceptQuest(ctx context.Context, profileID, questID string) (*domain.PlayerQuest, error) {
	args := m.Called(ctx, profileID, questID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerQuest), args.Error(1)
}

func (m *MockQuestRepository) GetPlayerQuest(ctx context.Context, playerQuestID string) (*domain.PlayerQuest, error) {
	args := m.Called(ctx, playerQuestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerQuest), args.Error(1)
}

func (m *MockQuestRepository) ListPlayerQuests(ctx context.Context, profileID string, status *domain.QuestStatus) ([]domain.PlayerQuest, error) {
	args := m.Called(ctx, profileID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlayerQuest), args.Error(1)
}

func (m *MockQuestRepository) ListWorkingQuests(ctx context.Context) ([]repository.WorkingQuest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.WorkingQuest), args.Error(1)
}

func (m *MockQuestRepository) SetWorking(ctx context.Context, playerQuestID string, working bool) (*domain.PlayerQuest, error) {
	args := m.Called(ctx, playerQuestID, working)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerQuest), args.Error(1)
}

func (m *MockQuestRepository) AdvanceProgress(ctx context.Context, playerQuestID string, fromProgress, toProgress int) error {
	args := m.Called(ctx, playerQuestID, fromProgress, toProgress)
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

type fixture struct {
	repo     *MockQuestRepository
	profiles *MockProfileRepository
	rewards  *MockRewardService
	activity *MockActivityService
	bus      *capturingBus
	svc      Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		repo:     new(MockQuestRepository),
		profiles: new(MockProfileRepository),
		rewards:  new(MockRewardService),
		activity: new(MockActivityService),
		bus:      &capturingBus{},
	}
	f.svc = NewService(f.repo, f.profiles, f.rewards, f.activity, f.bus)
	return f
}

func mineQuest() *domain.Quest {
	return &domain.Quest{
		ID:               "q1",
		Title:            "Clear the Mine",
		Difficulty:       domain.DifficultyEasy,
		LevelRequirement: 1,
		ExperienceReward: 120,
		GoldReward:       60,
	}
}

func activeQuest(progress int, working bool) *domain.PlayerQuest {
	return &domain.PlayerQuest{
		ID:        "pq1",
		ProfileID: "p1",
		QuestID:   "q1",
		Status:    domain.QuestStatusActive,
		Progress:  progress,
		IsWorking: working,
		Quest:     mineQuest(),
	}
}

func TestProgressGain(t *testing.T) {
	tests := []struct {
		name             string
		difficulty       domain.QuestDifficulty
		playerLevel      int
		levelRequirement int
		want             int
	}{
		{"easy base rate", domain.DifficultyEasy, 1, 1, 10},
		{"medium base rate", domain.DifficultyMedium, 5, 1, 5},
		{"hard with 20 level surplus", domain.DifficultyHard, 25, 5, 9},
		{"epic with 20 level surplus", domain.DifficultyEpic, 21, 1, 3},
		{"surplus of 9 gets no bonus", domain.DifficultyEasy, 10, 1, 10},
		{"surplus of 10 steps to 1.5x", domain.DifficultyEasy, 11, 1, 15},
		{"surplus of 19 stays at 1.5x", domain.DifficultyEasy, 20, 1, 15},
		{"surplus of 30 steps to 4.5x", domain.DifficultyMedium, 31, 1, 23},
		{"unknown difficulty accrues nothing", domain.QuestDifficulty("mythic"), 10, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressGain(tt.difficulty, tt.playerLevel, tt.levelRequirement))
		})
	}
}

func TestGetQuestBoard(t *testing.T) {
	f := newFixture(t)

	// 300 cumulative XP clears levels 1 and 2
	f.profiles.On("GetProfile", mock.Anything, "p1").
		Return(&domain.Profile{ID: "p1", Experience: 300}, nil)
	f.repo.On("ListQuestBoard", mock.Anything, "p1", 3).
		Return([]domain.Quest{*mineQuest()}, nil)

	board, err := f.svc.GetQuestBoard(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, board, 1)
	f.repo.AssertExpectations(t)
}

func TestAccept(t *testing.T) {
	t.Run("accepts an eligible quest", func(t *testing.T) {
		f := newFixture(t)

		f.profiles.On("GetProfile", mock.Anything, "p1").
			Return(&domain.Profile{ID: "p1", Experience: 0}, nil)
		f.repo.On("GetQuest", mock.Anything, "q1").Return(mineQuest(), nil)
		f.repo.On("AcceptQuest", mock.Anything, "p1", "q1").
			Return(&domain.PlayerQuest{ID: "pq1", ProfileID: "p1", QuestID: "q1", Status: domain.QuestStatusActive}, nil)
		f.activity.On("Record", mock.Anything, "p1", domain.ActivityAcceptQuest, mock.Anything).Return()

		playerQuest, err := f.svc.Accept(context.Background(), "p1", "q1")
		require.NoError(t, err)
		assert.NotNil(t, playerQuest.Quest)
		assert.Len(t, f.bus.byType(event.QuestAccepted), 1)
	})

	t.Run("gates on the derived level, not experience", func(t *testing.T) {
		f := newFixture(t)

		quest := mineQuest()
		quest.LevelRequirement = 3
		// 299 XP is still level 2
		f.profiles.On("GetProfile", mock.Anything, "p1").
			Return(&domain.Profile{ID: "p1", Experience: 299}, nil)
		f.repo.On("GetQuest", mock.Anything, "q1").Return(quest, nil)

		_, err := f.svc.Accept(context.Background(), "p1", "q1")
		assert.ErrorIs(t, err, domain.ErrLevelRequirement)
		assert.Equal(t, 2, level.Of(299))
	})

	t.Run("passes through duplicate acceptance", func(t *testing.T) {
		f := newFixture(t)

		f.profiles.On("GetProfile", mock.Anything, "p1").
			Return(&domain.Profile{ID: "p1", Experience: 0}, nil)
		f.repo.On("GetQuest", mock.Anything, "q1").Return(mineQuest(), nil)
		f.repo.On("AcceptQuest", mock.Anything, "p1", "q1").
			Return(nil, domain.ErrQuestAlreadyAccepted)

		_, err := f.svc.Accept(context.Background(), "p1", "q1")
		assert.ErrorIs(t, err, domain.ErrQuestAlreadyAccepted)
		assert.Empty(t, f.bus.events)
	})
}

func TestSetWorking(t *testing.T) {
	t.Run("starts work and publishes", func(t *testing.T) {
		f := newFixture(t)

		f.repo.On("GetPlayerQuest", mock.Anything, "pq1").Return(activeQuest(40, false), nil)
		f.repo.On("SetWorking", mock.Anything, "pq1", true).Return(activeQuest(40, true), nil)
		f.activity.On("Record", mock.Anything, "p1", domain.ActivityStartQuestWork, mock.Anything).Return()

		updated, err := f.svc.SetWorking(context.Background(), "p1", "pq1", true)
		require.NoError(t, err)
		assert.True(t, updated.IsWorking)
		assert.Len(t, f.bus.byType(event.QuestWorkStarted), 1)
	})

	t.Run("stops work and publishes", func(t *testing.T) {
		f := newFixture(t)

		f.repo.On("GetPlayerQuest", mock.Anything, "pq1").Return(activeQuest(40, true), nil)
		f.repo.On("SetWorking", mock.Anything, "pq1", false).Return(activeQuest(40, false), nil)
		f.activity.On("Record", mock.Anything, "p1", domain.ActivityStopQuestWork, mock.Anything).Return()

		updated, err := f.svc.SetWorking(context.Background(), "p1", "pq1", false)
		require.NoError(t, err)
		assert.False(t, updated.IsWorking)
		assert.Len(t, f.bus.byType(event.QuestWorkStopped), 1)
	})

	t.Run("hides other profiles' quests", func(t *testing.T) {
		f := newFixture(t)

		f.repo.On("GetPlayerQuest", mock.Anything, "pq1").Return(activeQuest(40, false), nil)

		_, err := f.svc.SetWorking(context.Background(), "intruder", "pq1", true)
		assert.ErrorIs(t, err, domain.ErrQuestNotFound)
		f.repo.AssertNotCalled(t, "SetWorking", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestComplete(t *testing.T) {
	t.Run("settles a fully progressed quest", func(t *testing.T) {
		f := newFixture(t)

		done := activeQuest(100, false)
		completed := activeQuest(100, false)
		completed.Status = domain.QuestStatusCompleted

		f.repo.On("GetPlayerQuest", mock.Anything, "pq1").Return(done, nil).Once()
		f.rewards.On("SettleQuest", mock.Anything, done).
			Return(repository.SettlementResult{Applied: true, ExperienceAfter: 120}, nil)
		f.activity.On("Record", mock.Anything, "p1", domain.ActivityCompleteQuest, mock.Anything).Return()
		f.repo.On("GetPlayerQuest", mock.Anything, "pq1").Return(completed, nil).Once()

		result, err := f.svc.Complete(context.Background(), "p1", "pq1")
		require.NoError(t, err)
		assert.Equal(t, domain.QuestStatusCompleted, result.Status)
		assert.Len(t, f.bus.byType(event.QuestCompleted), 1)
	})

	t.Run("refuses below full progress", func(t *testing.T) {
		f := newFixture(t)

		f.repo.On("GetPlayerQuest", mock.Anything, "pq1").Return(activeQuest(99, true), nil)

		_, err := f.svc.Complete(context.Background(), "p1", "pq1")
		assert.ErrorIs(t, err, domain.ErrQuestNotComplete)
		f.rewards.AssertNotCalled(t, "SettleQuest", mock.Anything, mock.Anything)
	})

	t.Run("refuses a completed quest", func(t *testing.T) {
		f := newFixture(t)

		done := activeQuest(100, false)
		done.Status = domain.QuestStatusCompleted
		f.repo.On("GetPlayerQuest", mock.Anything, "pq1").Return(done, nil)

		_, err := f.svc.Complete(context.Background(), "p1", "pq1")
		assert.ErrorIs(t, err, domain.ErrQuestNotActive)
	})

	t.Run("lost settlement race reports not active", func(t *testing.T) {
		f := newFixture(t)

		f.repo.On("GetPlayerQuest", mock.Anything, "pq1").Return(activeQuest(100, false), nil)
		f.rewards.On("SettleQuest", mock.Anything, mock.Anything).
			Return(repository.SettlementResult{Applied: false}, nil)

		_, err := f.svc.Complete(context.Background(), "p1", "pq1")
		assert.ErrorIs(t, err, domain.ErrQuestNotActive)
		assert.Empty(t, f.bus.byType(event.QuestCompleted))
	})
}

func TestAccrueProgress(t *testing.T) {
	working := func(progress int, exp int64) repository.WorkingQuest {
		pq := activeQuest(progress, true)
		return repository.WorkingQuest{PlayerQuest: *pq, ProfileExperience: exp}
	}

	t.Run("applies the difficulty rate", func(t *testing.T) {
		f := newFixture(t)

		f.repo.On("ListWorkingQuests", mock.Anything).
			Return([]repository.WorkingQuest{working(40, 0)}, nil)
		f.repo.On("AdvanceProgress", mock.Anything, "pq1", 40, 50).Return(nil)
		f.activity.On("Record", mock.Anything, "p1", domain.ActivityQuestProgress, mock.Anything).Return()

		err := f.svc.AccrueProgress(context.Background())
		require.NoError(t, err)
		f.repo.AssertExpectations(t)

		events := f.bus.byType(event.QuestProgressed)
		require.Len(t, events, 1)
		payload := events[0].Payload.(event.QuestProgressPayloadV1)
		assert.Equal(t, 50, payload.Progress)
		assert.Equal(t, 10, payload.Delta)
	})

	t.Run("caps progress at 100", func(t *testing.T) {
		f := newFixture(t)

		f.repo.On("ListWorkingQuests", mock.Anything).
			Return([]repository.WorkingQuest{working(95, 0)}, nil)
		f.repo.On("AdvanceProgress", mock.Anything, "pq1", 95, 100).Return(nil)
		f.activity.On("Record", mock.Anything, "p1", domain.ActivityQuestProgress, mock.Anything).Return()

		err := f.svc.AccrueProgress(context.Background())
		require.NoError(t, err)
		f.repo.AssertExpectations(t)
	})

	t.Run("continues past lost races", func(t *testing.T) {
		f := newFixture(t)

		first := working(40, 0)
		second := working(60, 0)
		second.PlayerQuest.ID = "pq2"

		f.repo.On("ListWorkingQuests", mock.Anything).
			Return([]repository.WorkingQuest{first, second}, nil)
		f.repo.On("AdvanceProgress", mock.Anything, "pq1", 40, 50).Return(domain.ErrTickConflict)
		f.repo.On("AdvanceProgress", mock.Anything, "pq2", 60, 70).Return(nil)

		err := f.svc.AccrueProgress(context.Background())
		require.NoError(t, err)
		f.repo.AssertExpectations(t)
	})

	t.Run("skips milestone entries between crossings", func(t *testing.T) {
		f := newFixture(t)

		f.repo.On("ListWorkingQuests", mock.Anything).
			Return([]repository.WorkingQuest{working(30, 0)}, nil)
		f.repo.On("AdvanceProgress", mock.Anything, "pq1", 30, 40).Return(nil)

		err := f.svc.AccrueProgress(context.Background())
		require.NoError(t, err)
		f.activity.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
