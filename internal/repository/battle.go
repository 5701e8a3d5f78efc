package repository

import (
	"context"

	"github.com/nyxa-games/emberdeep/internal/domain"
)

// BattleRepository defines the interface for battle storage
type BattleRepository interface {
	// CreateBattle inserts a new in-progress battle.
	// Returns domain.ErrBattleInProgress when the profile already has one.
	CreateBattle(ctx context.Context, battle *domain.Battle) (*domain.Battle, error)

	// GetBattle retrieves a battle by ID with its monster joined.
	// Returns domain.ErrBattleNotFound when no row matches.
	GetBattle(ctx context.Context, battleID string) (*domain.Battle, error)

	// GetActiveBattle retrieves the profile's single in-progress battle.
	// Returns domain.ErrBattleNotFound when the profile has none.
	GetActiveBattle(ctx context.Context, profileID string) (*domain.Battle, error)

	// ListActiveBattles retrieves every in-progress battle with monsters
	// joined, for the background sweep.
	ListActiveBattles(ctx context.Context) ([]domain.Battle, error)

	// AppendTurn conditionally applies one resolved turn. The update only
	// lands if the battle is still in progress and its stored turn count is
	// exactly turn.Turn-1; otherwise domain.ErrTickConflict is returned and
	// nothing changes. When newStatus is terminal the battle is closed in
	// the same write, recording rewards (victory) and the completion time.
	AppendTurn(ctx context.Context, battleID string, turn domain.BattleTurn, newStatus domain.BattleStatus, rewards *domain.BattleRewards) error

	// ListUnsettledVictories retrieves finished victories whose rewards have
	// not yet been settled, for crash recovery.
	ListUnsettledVictories(ctx context.Context) ([]domain.Battle, error)
}
