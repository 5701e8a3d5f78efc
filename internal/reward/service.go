package reward

import (
	"context"
	"fmt"

	"github.com/nyxa-games/emberdeep/internal/activity"
	"github.com/nyxa-games/emberdeep/internal/domain"
	"github.com/nyxa-games/emberdeep/internal/event"
	"github.com/nyxa-games/emberdeep/internal/level"
	"github.com/nyxa-games/emberdeep/internal/logger"
	"github.com/nyxa-games/emberdeep/internal/repository"
)

// Service settles reward bundles against profiles. Settlement is the only
// writer of profile experience and gold; every grant lands exactly once no
// matter how many callers retry.
type Service interface {
	// SettleBattle applies a victorious battle's stored rewards to its
	// profile. Applied is false when another writer settled first.
	SettleBattle(ctx context.Context, battle *domain.Battle) (repository.SettlementResult, error)

	// SettleQuest moves the player quest to completed and applies its
	// template rewards. Applied is false when the quest already left the
	// active state. Requires the template joined on the player quest.
	SettleQuest(ctx context.Context, playerQuest *domain.PlayerQuest) (repository.SettlementResult, error)
}

type service struct {
	repo      repository.RewardRepository
	activity  activity.Service
	publisher event.Bus
}

// NewService creates a new reward settlement service
func NewService(repo repository.RewardRepository, activitySvc activity.Service, publisher event.Bus) Service {
	return &service{
		repo:      repo,
		activity:  activitySvc,
		publisher: publisher,
	}
}

func (s *service) SettleBattle(ctx context.Context, battle *domain.Battle) (repository.SettlementResult, error) {
	if battle.Status != domain.BattleStatusVictory || battle.Rewards == nil {
		return repository.SettlementResult{}, fmt.Errorf("battle %s has no settleable rewards: %w", battle.ID, domain.ErrBattleFinished)
	}

	bundle := domain.RewardBundle{
		Experience: battle.Rewards.Experience,
		Gold:       battle.Rewards.Gold,
		Items:      battle.Rewards.Items,
	}

	result, err := s.repo.SettleBattleRewards(ctx, battle.ID, battle.ProfileID, bundle)
	if err != nil {
		return result, fmt.Errorf("failed to settle battle rewards: %w", err)
	}
	if !result.Applied {
		return result, nil
	}

	s.afterGrant(ctx, battle.ProfileID, event.SourceBattle, battle.ID, bundle, result)
	return result, nil
}

func (s *service) SettleQuest(ctx context.Context, playerQuest *domain.PlayerQuest) (repository.SettlementResult, error) {
	if playerQuest.Quest == nil {
		return repository.SettlementResult{}, fmt.Errorf("player quest %s is missing its template: %w", playerQuest.ID, domain.ErrQuestNotFound)
	}

	quest := playerQuest.Quest
	bundle := domain.RewardBundle{
		Experience: quest.ExperienceReward,
		Gold:       quest.GoldReward,
	}
	if quest.ItemRewardID != nil {
		bundle.Items = []string{*quest.ItemRewardID}
	}

	result, err := s.repo.SettleQuestRewards(ctx, playerQuest.ID, playerQuest.ProfileID, bundle)
	if err != nil {
		return result, fmt.Errorf("failed to settle quest rewards: %w", err)
	}
	if !result.Applied {
		return result, nil
	}

	s.afterGrant(ctx, playerQuest.ProfileID, event.SourceQuest, playerQuest.ID, bundle, result)
	return result, nil
}

// afterGrant publishes the settlement event and handles level-up detection
// for a grant that landed.
func (s *service) afterGrant(ctx context.Context, profileID, source, sourceID string, bundle domain.RewardBundle, result repository.SettlementResult) {
	if err := s.publisher.Publish(ctx, event.NewRewardSettledEvent(
		profileID, source, sourceID, bundle.Experience, bundle.Gold, bundle.Items)); err != nil {
		log := logger.FromContext(ctx)
		log.Warn("Failed to publish reward settled event", "profile_id", profileID, "error", err)
	}

	oldLevel := level.Of(result.ExperienceBefore)
	newLevel := level.Of(result.ExperienceAfter)
	if newLevel <= oldLevel {
		return
	}

	s.activity.Record(ctx, profileID, domain.ActivityLevelUp,
		fmt.Sprintf("Reached level %d", newLevel))

	if err := s.publisher.Publish(ctx, event.NewLevelUpEvent(profileID, oldLevel, newLevel)); err != nil {
		log := logger.FromContext(ctx)
		log.Warn("Failed to publish level up event", "profile_id", profileID, "error", err)
	}
}
