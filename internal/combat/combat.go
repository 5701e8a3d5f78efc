package combat

import (
	"math"

	"github.com/nyxa-games/emberdeep/internal/domain"
)

// Combat tuning constants
const (
	// PlayerLevelPowerBonus is the per-level contribution to player power
	PlayerLevelPowerBonus = 5

	// MonsterLevelPowerBonus is the per-level contribution to monster power
	MonsterLevelPowerBonus = 3

	// DamageVariance is the symmetric random variance applied to base damage
	DamageVariance = 0.2

	// DefenderMitigation is the fraction of defender power subtracted from
	// attacker power when computing base damage
	DefenderMitigation = 0.5

	// RewardLevelGap is the level difference beyond which reward multipliers
	// kick in
	RewardLevelGap = 5

	// OverleveledRewardMultiplier applies when the player outlevels the
	// monster by more than RewardLevelGap
	OverleveledRewardMultiplier = 0.5

	// UnderleveledRewardMultiplier applies when the monster outlevels the
	// player by more than RewardLevelGap
	UnderleveledRewardMultiplier = 1.5
)

// RNG is the randomness source for turn resolution and loot rolls.
// Float64 must be uniform on [0,1). *math/rand.Rand satisfies it.
type RNG interface {
	Float64() float64
}

// PlayerPower computes a profile's combat power from its attributes, level
// and the bonus sum of currently equipped items. The equipment bonus is an
// external aggregation owned by the inventory; callers pass it in.
func PlayerPower(p *domain.Profile, playerLevel, equipmentBonus int) int {
	base := p.Strength + p.Intelligence + p.Dexterity
	return base + playerLevel*PlayerLevelPowerBonus + equipmentBonus
}

// MonsterPower computes a monster template's combat power
func MonsterPower(m *domain.Monster) int {
	return m.Damage + m.Defense + m.Level*MonsterLevelPowerBonus
}

// Damage computes one attack's damage from attacker and defender power.
// base = max(1, attacker - 0.5*defender), then a symmetric +-20% variance is
// applied and the result floored, never below 1. The RNG draw is the only
// stochastic element of turn resolution.
func Damage(attackerPower, defenderPower int, rng RNG) int {
	base := float64(attackerPower) - DefenderMitigation*float64(defenderPower)
	if base < 1 {
		base = 1
	}

	variance := base * DamageVariance
	dmg := int(math.Floor(base + rng.Float64()*variance*2 - variance))
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// RewardMultiplier returns the experience/gold scaling for a victory based on
// the player-monster level gap. Easy kills pay half, risky kills pay half
// again on top.
func RewardMultiplier(playerLevel, monsterLevel int) float64 {
	diff := playerLevel - monsterLevel
	switch {
	case diff > RewardLevelGap:
		return OverleveledRewardMultiplier
	case diff < -RewardLevelGap:
		return UnderleveledRewardMultiplier
	default:
		return 1
	}
}

// RollRewards resolves a victory's reward bundle: every loot table entry is
// rolled independently against its drop chance, and the monster's base
// experience/gold rewards are scaled by the level-gap multiplier and floored.
// No variance is applied to experience or gold.
func RollRewards(m *domain.Monster, playerLevel int, rng RNG) domain.RewardBundle {
	var items []string
	for _, entry := range m.LootTable {
		if rng.Float64() < entry.Chance {
			items = append(items, entry.ItemID)
		}
	}

	mult := RewardMultiplier(playerLevel, m.Level)
	return domain.RewardBundle{
		Experience: int64(math.Floor(float64(m.ExperienceReward) * mult)),
		Gold:       int64(math.Floor(float64(m.GoldReward) * mult)),
		Items:      items,
	}
}
