package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nyxa-games/emberdeep/internal/database/postgres"
	"github.com/nyxa-games/emberdeep/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Profile   repository.ProfileRepository
	Inventory repository.InventoryRepository
	Dungeon   repository.DungeonRepository
	Battle    repository.BattleRepository
	Quest     repository.QuestRepository
	Reward    repository.RewardRepository
	Activity  repository.ActivityRepository
}

// InitializeRepositories creates all repository implementations
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Profile:   postgres.NewProfileRepository(dbPool),
		Inventory: postgres.NewInventoryRepository(dbPool),
		Dungeon:   postgres.NewDungeonRepository(dbPool),
		Battle:    postgres.NewBattleRepository(dbPool),
		Quest:     postgres.NewQuestRepository(dbPool),
		Reward:    postgres.NewRewardRepository(dbPool),
		Activity:  postgres.NewActivityRepository(dbPool),
	}
}
