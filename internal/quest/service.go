package quest

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/nyxa-games/emberdeep/internal/activity"
	"github.com/nyxa-games/emberdeep/internal/domain"
	"github.com/nyxa-games/emberdeep/internal/event"
	"github.com/nyxa-games/emberdeep/internal/level"
	"github.com/nyxa-games/emberdeep/internal/logger"
	"github.com/nyxa-games/emberdeep/internal/metrics"
	"github.com/nyxa-games/emberdeep/internal/repository"
	"github.com/nyxa-games/emberdeep/internal/reward"
)

// Level bonus step function for progress accrual: every full 10 levels of
// surplus over the quest's requirement adds another 1.5x step.
const (
	LevelBonusStep       = 10
	LevelBonusMultiplier = 1.5
)

// ProgressComplete is the progress percentage at which accrual stops and the
// quest awaits explicit completion.
const ProgressComplete = 100

// ActivityMilestone is the progress interval at which accrual writes a feed
// entry, to keep the feed from drowning in per-tick noise.
const ActivityMilestone = 25

// Service drives the quest lifecycle: board browsing, acceptance, the
// working flag, cadence-based progress accrual and explicit completion.
type Service interface {
	// GetQuestBoard returns quest templates the profile can accept
	GetQuestBoard(ctx context.Context, profileID string) ([]domain.Quest, error)

	// Accept takes a quest from the board. Returns domain.ErrLevelRequirement
	// below the template's level and domain.ErrQuestAlreadyAccepted on a
	// duplicate.
	Accept(ctx context.Context, profileID, questID string) (*domain.PlayerQuest, error)

	// SetWorking flips whether the quest accrues progress. Setting the flag
	// to its current value is a valid no-op.
	SetWorking(ctx context.Context, profileID, playerQuestID string, working bool) (*domain.PlayerQuest, error)

	// Complete grants the quest's rewards. Distinct from reaching 100%:
	// returns domain.ErrQuestNotComplete below full progress and grants
	// exactly once no matter how many callers race.
	Complete(ctx context.Context, profileID, playerQuestID string) (*domain.PlayerQuest, error)

	// GetPlayerQuest retrieves one of the profile's quests
	GetPlayerQuest(ctx context.Context, profileID, playerQuestID string) (*domain.PlayerQuest, error)

	// ListPlayerQuests returns the profile's quests, optionally by status
	ListPlayerQuests(ctx context.Context, profileID string, status *domain.QuestStatus) ([]domain.PlayerQuest, error)

	// AccrueProgress applies one accrual tick to every working quest.
	// Lost races are expected under concurrent sweeps and are swallowed.
	AccrueProgress(ctx context.Context) error
}

type service struct {
	repo      repository.QuestRepository
	profiles  repository.ProfileRepository
	rewards   reward.Service
	activity  activity.Service
	publisher event.Bus
}

// NewService creates a new quest service
func NewService(
	repo repository.QuestRepository,
	profiles repository.ProfileRepository,
	rewards reward.Service,
	activitySvc activity.Service,
	publisher event.Bus,
) Service {
	return &service{
		repo:      repo,
		profiles:  profiles,
		rewards:   rewards,
		activity:  activitySvc,
		publisher: publisher,
	}
}

func (s *service) GetQuestBoard(ctx context.Context, profileID string) ([]domain.Quest, error) {
	profile, err := s.profiles.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	return s.repo.ListQuestBoard(ctx, profileID, level.Of(profile.Experience))
}

func (s *service) Accept(ctx context.Context, profileID, questID string) (*domain.PlayerQuest, error) {
	profile, err := s.profiles.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	quest, err := s.repo.GetQuest(ctx, questID)
	if err != nil {
		return nil, err
	}

	if level.Of(profile.Experience) < quest.LevelRequirement {
		return nil, fmt.Errorf("%w: %s requires level %d", domain.ErrLevelRequirement, quest.Title, quest.LevelRequirement)
	}

	playerQuest, err := s.repo.AcceptQuest(ctx, profileID, questID)
	if err != nil {
		return nil, err
	}
	playerQuest.Quest = quest

	s.activity.Record(ctx, profileID, domain.ActivityAcceptQuest,
		fmt.Sprintf("Accepted quest: %s", quest.Title))
	s.publish(ctx, event.NewQuestEvent(event.QuestAccepted, playerQuest.ID, profileID, questID, quest.Title))

	return playerQuest, nil
}

func (s *service) SetWorking(ctx context.Context, profileID, playerQuestID string, working bool) (*domain.PlayerQuest, error) {
	playerQuest, err := s.ownedQuest(ctx, profileID, playerQuestID)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.SetWorking(ctx, playerQuest.ID, working)
	if err != nil {
		return nil, err
	}
	updated.Quest = playerQuest.Quest

	title := ""
	if playerQuest.Quest != nil {
		title = playerQuest.Quest.Title
	}

	if working {
		s.activity.Record(ctx, profileID, domain.ActivityStartQuestWork,
			fmt.Sprintf("Started working on: %s", title))
		s.publish(ctx, event.NewQuestEvent(event.QuestWorkStarted, updated.ID, profileID, updated.QuestID, title))
	} else {
		s.activity.Record(ctx, profileID, domain.ActivityStopQuestWork,
			fmt.Sprintf("Stopped working on: %s", title))
		s.publish(ctx, event.NewQuestEvent(event.QuestWorkStopped, updated.ID, profileID, updated.QuestID, title))
	}

	return updated, nil
}

func (s *service) Complete(ctx context.Context, profileID, playerQuestID string) (*domain.PlayerQuest, error) {
	playerQuest, err := s.ownedQuest(ctx, profileID, playerQuestID)
	if err != nil {
		return nil, err
	}

	if playerQuest.Status != domain.QuestStatusActive {
		return nil, domain.ErrQuestNotActive
	}
	if playerQuest.Progress < ProgressComplete {
		return nil, domain.ErrQuestNotComplete
	}

	result, err := s.rewards.SettleQuest(ctx, playerQuest)
	if err != nil {
		return nil, err
	}
	if !result.Applied {
		// Another writer completed it first
		return nil, domain.ErrQuestNotActive
	}

	quest := playerQuest.Quest
	s.activity.Record(ctx, profileID, domain.ActivityCompleteQuest,
		fmt.Sprintf("Completed quest: %s", quest.Title))
	s.publish(ctx, event.NewQuestEvent(event.QuestCompleted, playerQuest.ID, profileID, quest.ID, quest.Title))
	metrics.QuestsCompleted.WithLabelValues(string(quest.Difficulty)).Inc()

	completed, err := s.repo.GetPlayerQuest(ctx, playerQuest.ID)
	if err != nil {
		return nil, err
	}

	return completed, nil
}

func (s *service) GetPlayerQuest(ctx context.Context, profileID, playerQuestID string) (*domain.PlayerQuest, error) {
	return s.ownedQuest(ctx, profileID, playerQuestID)
}

func (s *service) ListPlayerQuests(ctx context.Context, profileID string, status *domain.QuestStatus) ([]domain.PlayerQuest, error) {
	return s.repo.ListPlayerQuests(ctx, profileID, status)
}

func (s *service) AccrueProgress(ctx context.Context) error {
	working, err := s.repo.ListWorkingQuests(ctx)
	if err != nil {
		return fmt.Errorf("failed to list working quests: %w", err)
	}

	log := logger.FromContext(ctx)
	for i := range working {
		if err := s.accrueOne(ctx, &working[i]); err != nil {
			if errors.Is(err, domain.ErrTickConflict) {
				metrics.TickConflicts.WithLabelValues(metrics.ConflictKindQuest).Inc()
				log.Debug("Quest tick lost race", "player_quest_id", working[i].PlayerQuest.ID)
				continue
			}
			log.Error("Failed to accrue quest progress",
				"player_quest_id", working[i].PlayerQuest.ID,
				"error", err)
		}
	}

	return nil
}

func (s *service) accrueOne(ctx context.Context, wq *repository.WorkingQuest) error {
	playerQuest := &wq.PlayerQuest
	quest := playerQuest.Quest
	if quest == nil {
		return fmt.Errorf("player quest %s is missing its template: %w", playerQuest.ID, domain.ErrQuestNotFound)
	}

	gain := ProgressGain(quest.Difficulty, level.Of(wq.ProfileExperience), quest.LevelRequirement)
	newProgress := playerQuest.Progress + gain
	if newProgress > ProgressComplete {
		newProgress = ProgressComplete
	}

	if err := s.repo.AdvanceProgress(ctx, playerQuest.ID, playerQuest.Progress, newProgress); err != nil {
		return err
	}

	s.publish(ctx, event.NewQuestProgressEvent(
		playerQuest.ID, playerQuest.ProfileID, quest.Title, newProgress, newProgress-playerQuest.Progress))

	// Feed entries only at milestone crossings
	if newProgress/ActivityMilestone > playerQuest.Progress/ActivityMilestone {
		s.activity.Record(ctx, playerQuest.ProfileID, domain.ActivityQuestProgress,
			fmt.Sprintf("%s: %d%% complete", quest.Title, newProgress))
	}

	return nil
}

// ProgressGain computes one accrual tick's progress: the difficulty's base
// rate scaled by the level-surplus step function. With surplus below 10 the
// multiplier is 1; from there it steps by 1.5 per full 10 levels of surplus.
func ProgressGain(difficulty domain.QuestDifficulty, playerLevel, levelRequirement int) int {
	baseRate, ok := domain.DifficultyProgressRates[difficulty]
	if !ok {
		return 0
	}

	multiplier := 1.0
	if diff := playerLevel - levelRequirement; diff >= LevelBonusStep {
		multiplier = float64(diff/LevelBonusStep) * LevelBonusMultiplier
	}

	return int(math.Round(float64(baseRate) * multiplier))
}

func (s *service) ownedQuest(ctx context.Context, profileID, playerQuestID string) (*domain.PlayerQuest, error) {
	playerQuest, err := s.repo.GetPlayerQuest(ctx, playerQuestID)
	if err != nil {
		return nil, err
	}
	if playerQuest.ProfileID != profileID {
		return nil, domain.ErrQuestNotFound
	}

	return playerQuest, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if err := s.publisher.Publish(ctx, evt); err != nil {
		log := logger.FromContext(ctx)
		log.Warn("Failed to publish event", "event_type", evt.Type, "error", err)
	}
}
