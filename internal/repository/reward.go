package repository

import (
	"context"

	"github.com/nyxa-games/emberdeep/internal/domain"
)

// SettlementResult reports what a settlement attempt did. Applied is false
// when another writer settled first; the grant fields are only meaningful
// when it is true.
type SettlementResult struct {
	Applied bool

	// Profile experience totals before and after the grant, for level-up
	// detection by the caller.
	ExperienceBefore int64
	ExperienceAfter  int64
}

// RewardRepository defines the interface for reward settlement. Each
// settlement runs in a single transaction: flip the settled marker, apply
// the grant to the profile, insert item rows. The marker flip is
// conditional, so a grant lands exactly once no matter how many writers
// race to settle.
type RewardRepository interface {
	// SettleBattleRewards marks the battle's rewards settled and applies
	// the bundle to the profile. Applied is false when the battle was
	// already settled or is not a victory.
	SettleBattleRewards(ctx context.Context, battleID, profileID string, bundle domain.RewardBundle) (SettlementResult, error)

	// SettleQuestRewards moves the player quest from active to completed
	// and applies the bundle to the profile. Applied is false when the
	// quest already left the active state.
	SettleQuestRewards(ctx context.Context, playerQuestID, profileID string, bundle domain.RewardBundle) (SettlementResult, error)
}
