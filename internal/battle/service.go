package battle

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/nyxa-games/emberdeep/internal/activity"
	"github.com/nyxa-games/emberdeep/internal/combat"
	"github.com/nyxa-games/emberdeep/internal/domain"
	"github.com/nyxa-games/emberdeep/internal/event"
	"github.com/nyxa-games/emberdeep/internal/level"
	"github.com/nyxa-games/emberdeep/internal/logger"
	"github.com/nyxa-games/emberdeep/internal/metrics"
	"github.com/nyxa-games/emberdeep/internal/repository"
	"github.com/nyxa-games/emberdeep/internal/reward"
)

// Monster template cache settings. Templates are immutable once referenced
// by a battle, so a short TTL only bounds staleness of newly authored rows.
const (
	MonsterCacheSize = 128
	MonsterCacheTTL  = 5 * time.Minute
)

// Service drives the battle lifecycle: dungeon entry, turn resolution on a
// fixed cadence, terminal settlement and dungeon progress.
type Service interface {
	// ListDungeons returns all dungeon definitions
	ListDungeons(ctx context.Context) ([]domain.Dungeon, error)

	// GetDungeonProgress returns the profile's progress through a dungeon.
	// Returns domain.ErrDungeonNotFound when the profile has never entered.
	GetDungeonProgress(ctx context.Context, profileID, dungeonID string) (*domain.DungeonProgress, error)

	// EnterDungeon starts a battle at the profile's current level of the
	// dungeon. Returns domain.ErrBattleInProgress when one is already open
	// and domain.ErrLevelRequirement below the dungeon's minimum level.
	EnterDungeon(ctx context.Context, profileID, dungeonID string) (*domain.Battle, error)

	// GetBattle retrieves a battle by ID
	GetBattle(ctx context.Context, battleID string) (*domain.Battle, error)

	// GetActiveBattle retrieves the profile's in-progress battle
	GetActiveBattle(ctx context.Context, profileID string) (*domain.Battle, error)

	// ResolveTurn advances a battle by exactly one turn. Returns
	// domain.ErrTickConflict when a concurrent writer advanced it first and
	// domain.ErrBattleFinished when the battle is already terminal.
	ResolveTurn(ctx context.Context, battleID string) (*domain.Battle, error)

	// SweepActiveBattles resolves one turn for every in-progress battle.
	// Lost races are expected under concurrent sweeps and are swallowed.
	SweepActiveBattles(ctx context.Context) error

	// RecoverUnsettled retries settlement for finished victories whose
	// rewards never landed, after a crash between close and settle.
	RecoverUnsettled(ctx context.Context) error
}

type service struct {
	battles   repository.BattleRepository
	dungeons  repository.DungeonRepository
	profiles  repository.ProfileRepository
	inventory repository.InventoryRepository
	rewards   reward.Service
	activity  activity.Service
	publisher event.Bus
	rng       combat.RNG
	monsters  *expirable.LRU[string, *domain.Monster]
}

// systemRNG draws from math/rand's goroutine-safe global source
type systemRNG struct{}

func (systemRNG) Float64() float64 { return rand.Float64() }

// NewService creates a new battle service. A nil rng selects the global
// math/rand source; tests inject a deterministic one.
func NewService(
	battles repository.BattleRepository,
	dungeons repository.DungeonRepository,
	profiles repository.ProfileRepository,
	inventory repository.InventoryRepository,
	rewards reward.Service,
	activitySvc activity.Service,
	publisher event.Bus,
	rng combat.RNG,
) Service {
	if rng == nil {
		rng = systemRNG{}
	}

	return &service{
		battles:   battles,
		dungeons:  dungeons,
		profiles:  profiles,
		inventory: inventory,
		rewards:   rewards,
		activity:  activitySvc,
		publisher: publisher,
		rng:       rng,
		monsters:  expirable.NewLRU[string, *domain.Monster](MonsterCacheSize, nil, MonsterCacheTTL),
	}
}

func (s *service) ListDungeons(ctx context.Context) ([]domain.Dungeon, error) {
	return s.dungeons.ListDungeons(ctx)
}

func (s *service) GetDungeonProgress(ctx context.Context, profileID, dungeonID string) (*domain.DungeonProgress, error) {
	return s.dungeons.GetProgress(ctx, profileID, dungeonID)
}

func (s *service) EnterDungeon(ctx context.Context, profileID, dungeonID string) (*domain.Battle, error) {
	profile, err := s.profiles.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	dungeon, err := s.dungeons.GetDungeon(ctx, dungeonID)
	if err != nil {
		return nil, err
	}

	playerLevel := level.Of(profile.Experience)
	if playerLevel < dungeon.MinLevel {
		return nil, fmt.Errorf("%w: %s requires level %d", domain.ErrLevelRequirement, dungeon.Name, dungeon.MinLevel)
	}

	progress, err := s.dungeons.EnsureProgress(ctx, profileID, dungeonID)
	if err != nil {
		return nil, err
	}

	dungeonLevel, err := s.dungeons.GetDungeonLevel(ctx, dungeonID, progress.CurrentLevel)
	if err != nil {
		return nil, err
	}

	monster := dungeonLevel.Monster
	if monster == nil {
		monster, err = s.monster(ctx, dungeonLevel.MonsterID)
		if err != nil {
			return nil, err
		}
	}

	battle := &domain.Battle{
		ProfileID:     profileID,
		DungeonID:     dungeonID,
		DungeonLevel:  progress.CurrentLevel,
		MonsterID:     monster.ID,
		PlayerHealth:  profile.MaxHealth,
		MonsterHealth: monster.Health,
		Status:        domain.BattleStatusInProgress,
		Monster:       monster,
	}

	created, err := s.battles.CreateBattle(ctx, battle)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, profileID, domain.ActivityEnterDungeon,
		fmt.Sprintf("Entered %s, level %d", dungeon.Name, progress.CurrentLevel))
	s.publish(ctx, event.NewBattleStartedEvent(
		created.ID, profileID, dungeonID, progress.CurrentLevel, monster.Name))

	return created, nil
}

func (s *service) GetBattle(ctx context.Context, battleID string) (*domain.Battle, error) {
	return s.battles.GetBattle(ctx, battleID)
}

func (s *service) GetActiveBattle(ctx context.Context, profileID string) (*domain.Battle, error) {
	return s.battles.GetActiveBattle(ctx, profileID)
}

func (s *service) ResolveTurn(ctx context.Context, battleID string) (*domain.Battle, error) {
	battle, err := s.battles.GetBattle(ctx, battleID)
	if err != nil {
		return nil, err
	}
	if battle.Status.Terminal() {
		return nil, domain.ErrBattleFinished
	}

	return s.resolveBattleTurn(ctx, battle)
}

func (s *service) SweepActiveBattles(ctx context.Context) error {
	battles, err := s.battles.ListActiveBattles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active battles: %w", err)
	}

	log := logger.FromContext(ctx)
	for i := range battles {
		battle := battles[i]
		if _, err := s.resolveBattleTurn(ctx, &battle); err != nil {
			if errors.Is(err, domain.ErrTickConflict) {
				// Another sweep or session already applied this cadence period
				log.Debug("Battle tick lost race", "battle_id", battle.ID)
				continue
			}
			log.Error("Failed to resolve battle turn", "battle_id", battle.ID, "error", err)
		}
	}

	return nil
}

func (s *service) RecoverUnsettled(ctx context.Context) error {
	battles, err := s.battles.ListUnsettledVictories(ctx)
	if err != nil {
		return fmt.Errorf("failed to list unsettled victories: %w", err)
	}

	for i := range battles {
		s.settleVictory(ctx, &battles[i])
	}

	return nil
}

// resolveBattleTurn computes and conditionally applies one turn. The write
// only lands if the battle's stored turn count still matches what was read,
// so racing writers append exactly one turn per cadence period between them.
func (s *service) resolveBattleTurn(ctx context.Context, battle *domain.Battle) (*domain.Battle, error) {
	profile, err := s.profiles.GetProfile(ctx, battle.ProfileID)
	if err != nil {
		return nil, err
	}

	equipBonus, err := s.inventory.EquippedBonus(ctx, battle.ProfileID)
	if err != nil {
		return nil, err
	}

	monster := battle.Monster
	if monster == nil {
		monster, err = s.monster(ctx, battle.MonsterID)
		if err != nil {
			return nil, err
		}
	}

	// Power is recomputed every tick so mid-battle equipment changes count
	playerLevel := level.Of(profile.Experience)
	playerPower := combat.PlayerPower(profile, playerLevel, equipBonus)
	monsterPower := combat.MonsterPower(monster)

	playerDamage := combat.Damage(playerPower, monsterPower, s.rng)
	monsterDamage := combat.Damage(monsterPower, playerPower, s.rng)

	monsterHealth := battle.MonsterHealth - playerDamage
	if monsterHealth < 0 {
		monsterHealth = 0
	}
	playerHealth := battle.PlayerHealth - monsterDamage
	if playerHealth < 0 {
		playerHealth = 0
	}

	status := domain.BattleStatusInProgress
	var rewards *domain.BattleRewards
	switch {
	case monsterHealth == 0:
		// Simultaneous zero is a victory, never a defeat
		status = domain.BattleStatusVictory
		bundle := combat.RollRewards(monster, playerLevel, s.rng)
		rewards = &domain.BattleRewards{
			Experience: bundle.Experience,
			Gold:       bundle.Gold,
			Items:      bundle.Items,
		}
	case playerHealth == 0:
		status = domain.BattleStatusDefeat
	}

	turn := domain.BattleTurn{
		Turn:          len(battle.Turns) + 1,
		PlayerDamage:  playerDamage,
		MonsterDamage: monsterDamage,
		PlayerHealth:  playerHealth,
		MonsterHealth: monsterHealth,
	}

	if err := s.battles.AppendTurn(ctx, battle.ID, turn, status, rewards); err != nil {
		if errors.Is(err, domain.ErrTickConflict) {
			metrics.TickConflicts.WithLabelValues(metrics.ConflictKindBattle).Inc()
		}
		return nil, err
	}

	battle.Turns = append(battle.Turns, turn)
	battle.PlayerHealth = playerHealth
	battle.MonsterHealth = monsterHealth
	battle.Status = status
	battle.Rewards = rewards
	if status.Terminal() {
		now := time.Now()
		battle.CompletedAt = &now
	}

	s.publish(ctx, event.NewBattleTurnEvent(
		battle.ID, battle.ProfileID, turn.Turn,
		playerDamage, monsterDamage, playerHealth, monsterHealth))

	switch status {
	case domain.BattleStatusVictory:
		s.activity.Record(ctx, battle.ProfileID, domain.ActivityBattleVictory,
			fmt.Sprintf("Defeated %s", monster.Name))
		s.publish(ctx, event.NewBattleEndedEvent(event.BattleVictory, event.BattleEndedPayloadV1{
			BattleID:    battle.ID,
			ProfileID:   battle.ProfileID,
			MonsterName: monster.Name,
			Turns:       turn.Turn,
			Experience:  rewards.Experience,
			Gold:        rewards.Gold,
			Items:       rewards.Items,
		}))
		s.settleVictory(ctx, battle)

	case domain.BattleStatusDefeat:
		s.activity.Record(ctx, battle.ProfileID, domain.ActivityBattleDefeat,
			fmt.Sprintf("Fell to %s", monster.Name))
		s.publish(ctx, event.NewBattleEndedEvent(event.BattleDefeat, event.BattleEndedPayloadV1{
			BattleID:    battle.ID,
			ProfileID:   battle.ProfileID,
			MonsterName: monster.Name,
			Turns:       turn.Turn,
		}))
	}

	return battle, nil
}

// settleVictory applies the battle's rewards and advances dungeon progress.
// Errors are logged, not returned: the battle is already closed and the
// unsettled-victory sweep retries the grant.
func (s *service) settleVictory(ctx context.Context, battle *domain.Battle) {
	log := logger.FromContext(ctx)

	result, err := s.rewards.SettleBattle(ctx, battle)
	if err != nil {
		log.Error("Failed to settle battle rewards", "battle_id", battle.ID, "error", err)
		return
	}
	if !result.Applied {
		return
	}
	battle.RewardsSettled = true

	if err := s.dungeons.AdvanceProgress(ctx, battle.ProfileID, battle.DungeonID, battle.DungeonLevel); err != nil {
		log.Error("Failed to advance dungeon progress",
			"profile_id", battle.ProfileID,
			"dungeon_id", battle.DungeonID,
			"error", err)
		return
	}

	dungeon, err := s.dungeons.GetDungeon(ctx, battle.DungeonID)
	if err != nil {
		log.Warn("Failed to load dungeon after victory", "dungeon_id", battle.DungeonID, "error", err)
		return
	}
	if battle.DungeonLevel >= dungeon.Levels {
		s.publish(ctx, event.NewDungeonCompletedEvent(battle.ProfileID, battle.DungeonID))
	}
}

func (s *service) monster(ctx context.Context, monsterID string) (*domain.Monster, error) {
	if monster, ok := s.monsters.Get(monsterID); ok {
		return monster, nil
	}

	monster, err := s.dungeons.GetMonster(ctx, monsterID)
	if err != nil {
		return nil, err
	}

	s.monsters.Add(monsterID, monster)
	return monster, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if err := s.publisher.Publish(ctx, evt); err != nil {
		log := logger.FromContext(ctx)
		log.Warn("Failed to publish event", "event_type", evt.Type, "error", err)
	}
}
