package domain

import "time"

// BattleStatus is the battle lifecycle state
type BattleStatus string

// Battle lifecycle states. Victory and defeat are terminal; a battle is
// mutated only while in progress.
const (
	BattleStatusInProgress BattleStatus = "in_progress"
	BattleStatusVictory    BattleStatus = "victory"
	BattleStatusDefeat     BattleStatus = "defeat"
)

// Terminal reports whether the status permits no further transitions
func (s BattleStatus) Terminal() bool {
	return s == BattleStatusVictory || s == BattleStatusDefeat
}

// BattleTurn is one resolved combat turn. Turns are append-only with
// 1-based, strictly increasing, gapless indices.
type BattleTurn struct {
	Turn          int `json:"turn"`
	PlayerDamage  int `json:"player_damage"`
	MonsterDamage int `json:"monster_damage"`
	PlayerHealth  int `json:"player_health"`
	MonsterHealth int `json:"monster_health"`
}

// BattleRewards holds the resolved victory rewards. Nil until the battle is
// terminal; always nil on defeat.
type BattleRewards struct {
	Experience int64    `json:"experience"`
	Gold       int64    `json:"gold"`
	Items      []string `json:"items,omitempty"`
}

// Battle represents one fight between a profile and a monster at a dungeon
// level. At most one battle per profile is in progress at any time.
type Battle struct {
	ID             string         `json:"id"`
	ProfileID      string         `json:"profile_id"`
	DungeonID      string         `json:"dungeon_id"`
	DungeonLevel   int            `json:"dungeon_level"`
	MonsterID      string         `json:"monster_id"`
	PlayerHealth   int            `json:"player_health"`
	MonsterHealth  int            `json:"monster_health"`
	Status         BattleStatus   `json:"status"`
	Turns          []BattleTurn   `json:"turns"`
	Rewards        *BattleRewards `json:"rewards,omitempty"`
	RewardsSettled bool           `json:"rewards_settled"`
	CreatedAt      time.Time      `json:"created_at"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty"`

	// Joined field
	Monster *Monster `json:"monster,omitempty"`
}
