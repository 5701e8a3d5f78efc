package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nyxa-games/emberdeep/internal/domain"
	"github.com/nyxa-games/emberdeep/internal/level"
	"github.com/nyxa-games/emberdeep/internal/repository"
)

// RewardRepository implements reward settlement for PostgreSQL. Each
// settlement is one transaction opened on a conditional marker flip, so a
// bundle lands on the profile exactly once however many writers race.
type RewardRepository struct {
	db *pgxpool.Pool
}

// NewRewardRepository creates a new RewardRepository
func NewRewardRepository(db *pgxpool.Pool) *RewardRepository {
	return &RewardRepository{db: db}
}

// SettleBattleRewards marks the battle settled and applies the bundle
func (r *RewardRepository) SettleBattleRewards(ctx context.Context, battleID, profileID string, bundle domain.RewardBundle) (repository.SettlementResult, error) {
	marker := `
		UPDATE battles
		SET rewards_settled = TRUE
		WHERE battle_id = $1 AND status = 'victory' AND rewards_settled = FALSE
	`

	return r.settle(ctx, profileID, bundle, marker, battleID)
}

// SettleQuestRewards moves the quest to completed and applies the bundle
func (r *RewardRepository) SettleQuestRewards(ctx context.Context, playerQuestID, profileID string, bundle domain.RewardBundle) (repository.SettlementResult, error) {
	marker := `
		UPDATE player_quests
		SET status = 'completed', is_working = FALSE, completed_at = NOW()
		WHERE player_quest_id = $1 AND status = 'active'
	`

	return r.settle(ctx, profileID, bundle, marker, playerQuestID)
}

// settle runs the marker flip and, if it won, the grant, in one transaction
func (r *RewardRepository) settle(ctx context.Context, profileID string, bundle domain.RewardBundle, markerQuery, markerID string) (repository.SettlementResult, error) {
	var result repository.SettlementResult

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	flipped, err := tx.Exec(ctx, markerQuery, markerID)
	if err != nil {
		return result, fmt.Errorf("failed to flip settlement marker: %w", err)
	}
	if flipped.RowsAffected() == 0 {
		// Another writer settled first; nothing to apply
		return result, nil
	}

	if err := r.applyGrant(ctx, tx, profileID, bundle, &result); err != nil {
		return repository.SettlementResult{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return repository.SettlementResult{}, fmt.Errorf("failed to commit settlement: %w", err)
	}

	result.Applied = true
	return result, nil
}

func (r *RewardRepository) applyGrant(ctx context.Context, tx pgx.Tx, profileID string, bundle domain.RewardBundle, result *repository.SettlementResult) error {
	grant := `
		UPDATE profiles
		SET experience = experience + $2,
			gold = gold + $3,
			updated_at = NOW()
		WHERE profile_id = $1
		RETURNING experience
	`

	if err := tx.QueryRow(ctx, grant, profileID, bundle.Experience, bundle.Gold).Scan(&result.ExperienceAfter); err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrProfileNotFound
		}
		return fmt.Errorf("failed to apply grant: %w", err)
	}
	result.ExperienceBefore = result.ExperienceAfter - bundle.Experience

	// Refresh the stored level copy from the new total
	refresh := `UPDATE profiles SET level = $2 WHERE profile_id = $1`
	if _, err := tx.Exec(ctx, refresh, profileID, level.Of(result.ExperienceAfter)); err != nil {
		return fmt.Errorf("failed to refresh level: %w", err)
	}

	for _, itemID := range bundle.Items {
		insert := `
			INSERT INTO inventory (profile_id, item_id)
			VALUES ($1, $2)
			ON CONFLICT (profile_id, item_id) DO UPDATE SET quantity = inventory.quantity + 1
		`
		if _, err := tx.Exec(ctx, insert, profileID, itemID); err != nil {
			return fmt.Errorf("failed to grant item %s: %w", itemID, err)
		}
	}

	return nil
}
