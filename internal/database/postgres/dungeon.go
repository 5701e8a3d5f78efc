package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nyxa-games/emberdeep/internal/domain"
)

const monsterColumns = `m.monster_id, m.monster_name, m.level, m.health, m.damage, m.defense,
		m.experience_reward, m.gold_reward, m.is_boss, m.loot_table, m.created_at`

// DungeonRepository implements the dungeon repository for PostgreSQL
type DungeonRepository struct {
	db *pgxpool.Pool
}

// NewDungeonRepository creates a new DungeonRepository
func NewDungeonRepository(db *pgxpool.Pool) *DungeonRepository {
	return &DungeonRepository{db: db}
}

// GetDungeon retrieves a dungeon by ID
func (r *DungeonRepository) GetDungeon(ctx context.Context, dungeonID string) (*domain.Dungeon, error) {
	query := `
		SELECT dungeon_id, dungeon_name, COALESCE(description, ''), min_level, levels, created_at
		FROM dungeons
		WHERE dungeon_id = $1
	`

	var d domain.Dungeon
	err := r.db.QueryRow(ctx, query, dungeonID).Scan(
		&d.ID, &d.Name, &d.Description, &d.MinLevel, &d.Levels, &d.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDungeonNotFound
		}
		return nil, fmt.Errorf("failed to get dungeon: %w", err)
	}

	return &d, nil
}

// ListDungeons retrieves all dungeon definitions
func (r *DungeonRepository) ListDungeons(ctx context.Context) ([]domain.Dungeon, error) {
	query := `
		SELECT dungeon_id, dungeon_name, COALESCE(description, ''), min_level, levels, created_at
		FROM dungeons
		ORDER BY min_level, dungeon_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list dungeons: %w", err)
	}
	defer rows.Close()

	var dungeons []domain.Dungeon
	for rows.Next() {
		var d domain.Dungeon
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.MinLevel, &d.Levels, &d.CreatedAt); err != nil {
			return nil, err
		}
		dungeons = append(dungeons, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dungeons, nil
}

// GetDungeonLevel retrieves one level of a dungeon with its monster joined
func (r *DungeonRepository) GetDungeonLevel(ctx context.Context, dungeonID string, levelNumber int) (*domain.DungeonLevel, error) {
	query := `
		SELECT dl.dungeon_level_id, dl.dungeon_id, dl.level_number, dl.monster_id, dl.is_boss_level, dl.created_at,
			` + monsterColumns + `
		FROM dungeon_levels dl
		JOIN monsters m ON m.monster_id = dl.monster_id
		WHERE dl.dungeon_id = $1 AND dl.level_number = $2
	`

	var (
		dl       domain.DungeonLevel
		m        domain.Monster
		lootJSON []byte
	)
	err := r.db.QueryRow(ctx, query, dungeonID, levelNumber).Scan(
		&dl.ID, &dl.DungeonID, &dl.LevelNumber, &dl.MonsterID, &dl.IsBossLevel, &dl.CreatedAt,
		&m.ID, &m.Name, &m.Level, &m.Health, &m.Damage, &m.Defense,
		&m.ExperienceReward, &m.GoldReward, &m.IsBoss, &lootJSON, &m.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDungeonNotFound
		}
		return nil, fmt.Errorf("failed to get dungeon level: %w", err)
	}

	if err := json.Unmarshal(lootJSON, &m.LootTable); err != nil {
		return nil, fmt.Errorf("failed to unmarshal loot table: %w", err)
	}

	dl.Monster = &m
	return &dl, nil
}

// GetMonster retrieves a monster template by ID
func (r *DungeonRepository) GetMonster(ctx context.Context, monsterID string) (*domain.Monster, error) {
	query := `SELECT ` + monsterColumns + ` FROM monsters m WHERE m.monster_id = $1`

	var (
		m        domain.Monster
		lootJSON []byte
	)
	err := r.db.QueryRow(ctx, query, monsterID).Scan(
		&m.ID, &m.Name, &m.Level, &m.Health, &m.Damage, &m.Defense,
		&m.ExperienceReward, &m.GoldReward, &m.IsBoss, &lootJSON, &m.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrMonsterNotFound
		}
		return nil, fmt.Errorf("failed to get monster: %w", err)
	}

	if err := json.Unmarshal(lootJSON, &m.LootTable); err != nil {
		return nil, fmt.Errorf("failed to unmarshal loot table: %w", err)
	}

	return &m, nil
}

// GetProgress retrieves a profile's progress through a dungeon
func (r *DungeonRepository) GetProgress(ctx context.Context, profileID, dungeonID string) (*domain.DungeonProgress, error) {
	query := `
		SELECT dungeon_progress_id, profile_id, dungeon_id, current_level, highest_level, completed, created_at, updated_at
		FROM dungeon_progress
		WHERE profile_id = $1 AND dungeon_id = $2
	`

	var dp domain.DungeonProgress
	err := r.db.QueryRow(ctx, query, profileID, dungeonID).Scan(
		&dp.ID, &dp.ProfileID, &dp.DungeonID, &dp.CurrentLevel, &dp.HighestLevel,
		&dp.Completed, &dp.CreatedAt, &dp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDungeonNotFound
		}
		return nil, fmt.Errorf("failed to get dungeon progress: %w", err)
	}

	return &dp, nil
}

// EnsureProgress retrieves the profile's progress, creating the level-1
// record on first entry
func (r *DungeonRepository) EnsureProgress(ctx context.Context, profileID, dungeonID string) (*domain.DungeonProgress, error) {
	query := `
		INSERT INTO dungeon_progress (profile_id, dungeon_id)
		VALUES ($1, $2)
		ON CONFLICT (profile_id, dungeon_id) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, profileID, dungeonID); err != nil {
		return nil, fmt.Errorf("failed to ensure dungeon progress: %w", err)
	}

	return r.GetProgress(ctx, profileID, dungeonID)
}

// AdvanceProgress records a cleared level. The current_level guard makes the
// advance idempotent: once any writer has moved past clearedLevel the update
// matches nothing.
func (r *DungeonRepository) AdvanceProgress(ctx context.Context, profileID, dungeonID string, clearedLevel int) error {
	query := `
		UPDATE dungeon_progress dp
		SET current_level = LEAST($3 + 1, d.levels),
			highest_level = GREATEST(dp.highest_level, LEAST($3 + 1, d.levels)),
			completed = dp.completed OR $3 >= d.levels,
			updated_at = NOW()
		FROM dungeons d
		WHERE dp.profile_id = $1
			AND dp.dungeon_id = $2
			AND d.dungeon_id = dp.dungeon_id
			AND dp.current_level <= $3
	`

	if _, err := r.db.Exec(ctx, query, profileID, dungeonID, clearedLevel); err != nil {
		return fmt.Errorf("failed to advance dungeon progress: %w", err)
	}

	return nil
}
