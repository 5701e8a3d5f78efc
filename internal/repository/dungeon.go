package repository

import (
	"context"

	"github.com/nyxa-games/emberdeep/internal/domain"
)

// DungeonRepository defines the interface for dungeon and monster storage
type DungeonRepository interface {
	// GetDungeon retrieves a dungeon by ID.
	// Returns domain.ErrDungeonNotFound when no row matches.
	GetDungeon(ctx context.Context, dungeonID string) (*domain.Dungeon, error)

	// ListDungeons retrieves all dungeon definitions
	ListDungeons(ctx context.Context) ([]domain.Dungeon, error)

	// GetDungeonLevel retrieves one level of a dungeon with its monster
	// joined. Returns domain.ErrDungeonNotFound when no row matches.
	GetDungeonLevel(ctx context.Context, dungeonID string, levelNumber int) (*domain.DungeonLevel, error)

	// GetMonster retrieves a monster template by ID.
	// Returns domain.ErrMonsterNotFound when no row matches.
	GetMonster(ctx context.Context, monsterID string) (*domain.Monster, error)

	// GetProgress retrieves a profile's progress through a dungeon.
	// Returns domain.ErrDungeonNotFound when the profile has never entered.
	GetProgress(ctx context.Context, profileID, dungeonID string) (*domain.DungeonProgress, error)

	// EnsureProgress retrieves the profile's progress, creating the level-1
	// record on first entry.
	EnsureProgress(ctx context.Context, profileID, dungeonID string) (*domain.DungeonProgress, error)

	// AdvanceProgress records that clearedLevel was beaten: current level
	// moves to clearedLevel+1 (capped at the dungeon's deepest level),
	// highest level ratchets up, and clearing the deepest level marks the
	// dungeon completed. Advancing past an already-higher record is a no-op.
	AdvanceProgress(ctx context.Context, profileID, dungeonID string, clearedLevel int) error
}
