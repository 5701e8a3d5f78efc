package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nyxa-games/emberdeep/internal/domain"
)

const battleSelect = `
	SELECT b.battle_id, b.profile_id, b.dungeon_id, b.dungeon_level, b.monster_id,
		b.player_health, b.monster_health, b.status, b.turns, b.rewards,
		b.rewards_settled, b.created_at, b.completed_at,
		m.monster_id, m.monster_name, m.level, m.health, m.damage, m.defense,
		m.experience_reward, m.gold_reward, m.is_boss, m.loot_table, m.created_at
	FROM battles b
	JOIN monsters m ON m.monster_id = b.monster_id`

// BattleRepository implements the battle repository for PostgreSQL
type BattleRepository struct {
	db *pgxpool.Pool
}

// NewBattleRepository creates a new BattleRepository
func NewBattleRepository(db *pgxpool.Pool) *BattleRepository {
	return &BattleRepository{db: db}
}

// CreateBattle inserts a new in-progress battle. The partial unique index on
// in-progress battles turns a second concurrent entry into
// domain.ErrBattleInProgress.
func (r *BattleRepository) CreateBattle(ctx context.Context, battle *domain.Battle) (*domain.Battle, error) {
	query := `
		INSERT INTO battles (profile_id, dungeon_id, dungeon_level, monster_id, player_health, monster_health)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING battle_id, status, created_at
	`

	created := *battle
	err := r.db.QueryRow(ctx, query,
		battle.ProfileID, battle.DungeonID, battle.DungeonLevel, battle.MonsterID,
		battle.PlayerHealth, battle.MonsterHealth,
	).Scan(&created.ID, &created.Status, &created.CreatedAt)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == PgErrorCodeUniqueViolation {
			return nil, domain.ErrBattleInProgress
		}
		return nil, fmt.Errorf("failed to insert battle: %w", err)
	}

	return &created, nil
}

// GetBattle retrieves a battle by ID with its monster joined
func (r *BattleRepository) GetBattle(ctx context.Context, battleID string) (*domain.Battle, error) {
	query := battleSelect + ` WHERE b.battle_id = $1`

	battle, err := scanBattle(r.db.QueryRow(ctx, query, battleID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrBattleNotFound
		}
		return nil, fmt.Errorf("failed to get battle: %w", err)
	}

	return battle, nil
}

// GetActiveBattle retrieves the profile's single in-progress battle
func (r *BattleRepository) GetActiveBattle(ctx context.Context, profileID string) (*domain.Battle, error) {
	query := battleSelect + ` WHERE b.profile_id = $1 AND b.status = 'in_progress'`

	battle, err := scanBattle(r.db.QueryRow(ctx, query, profileID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrBattleNotFound
		}
		return nil, fmt.Errorf("failed to get active battle: %w", err)
	}

	return battle, nil
}

// ListActiveBattles retrieves every in-progress battle for the sweep
func (r *BattleRepository) ListActiveBattles(ctx context.Context) ([]domain.Battle, error) {
	query := battleSelect + ` WHERE b.status = 'in_progress' ORDER BY b.created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active battles: %w", err)
	}
	defer rows.Close()

	return collectBattles(rows)
}

// ListUnsettledVictories retrieves victories whose rewards have not landed yet
func (r *BattleRepository) ListUnsettledVictories(ctx context.Context) ([]domain.Battle, error) {
	query := battleSelect + ` WHERE b.status = 'victory' AND b.rewards_settled = FALSE ORDER BY b.created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list unsettled victories: %w", err)
	}
	defer rows.Close()

	return collectBattles(rows)
}

// AppendTurn conditionally applies one resolved turn. The WHERE clause is the
// whole concurrency story: the write only lands while the battle is still in
// progress and its stored turn count is exactly one less than the new turn's
// index, so racing tickers produce one appended turn and N-1 conflicts.
func (r *BattleRepository) AppendTurn(ctx context.Context, battleID string, turn domain.BattleTurn, newStatus domain.BattleStatus, rewards *domain.BattleRewards) error {
	turnJSON, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("failed to marshal turn: %w", err)
	}

	var rewardsJSON []byte
	if rewards != nil {
		rewardsJSON, err = json.Marshal(rewards)
		if err != nil {
			return fmt.Errorf("failed to marshal rewards: %w", err)
		}
	}

	query := `
		UPDATE battles
		SET turns = turns || $2::jsonb,
			player_health = $3,
			monster_health = $4,
			status = $5,
			rewards = $6,
			completed_at = CASE WHEN $5 = 'in_progress' THEN completed_at ELSE NOW() END
		WHERE battle_id = $1
			AND status = 'in_progress'
			AND jsonb_array_length(turns) = $7
	`

	result, err := r.db.Exec(ctx, query,
		battleID, turnJSON, turn.PlayerHealth, turn.MonsterHealth,
		newStatus, rewardsJSON, turn.Turn-1,
	)
	if err != nil {
		return fmt.Errorf("failed to append turn: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTickConflict
	}

	return nil
}

func scanBattle(row pgx.Row) (*domain.Battle, error) {
	var (
		b           domain.Battle
		m           domain.Monster
		turnsJSON   []byte
		rewardsJSON []byte
		lootJSON    []byte
	)

	err := row.Scan(
		&b.ID, &b.ProfileID, &b.DungeonID, &b.DungeonLevel, &b.MonsterID,
		&b.PlayerHealth, &b.MonsterHealth, &b.Status, &turnsJSON, &rewardsJSON,
		&b.RewardsSettled, &b.CreatedAt, &b.CompletedAt,
		&m.ID, &m.Name, &m.Level, &m.Health, &m.Damage, &m.Defense,
		&m.ExperienceReward, &m.GoldReward, &m.IsBoss, &lootJSON, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(turnsJSON, &b.Turns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal turns: %w", err)
	}
	if len(rewardsJSON) > 0 {
		if err := json.Unmarshal(rewardsJSON, &b.Rewards); err != nil {
			return nil, fmt.Errorf("failed to unmarshal rewards: %w", err)
		}
	}
	if err := json.Unmarshal(lootJSON, &m.LootTable); err != nil {
		return nil, fmt.Errorf("failed to unmarshal loot table: %w", err)
	}

	b.Monster = &m
	return &b, nil
}

func collectBattles(rows pgx.Rows) ([]domain.Battle, error) {
	var battles []domain.Battle
	for rows.Next() {
		battle, err := scanBattle(rows)
		if err != nil {
			return nil, err
		}
		battles = append(battles, *battle)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return battles, nil
}
