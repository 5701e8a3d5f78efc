package domain

import "time"

// LootEntry is one independent drop roll in a monster's loot table.
// Chance is a probability in [0,1]; entries are rolled independently and are
// not required to sum to 1.
type LootEntry struct {
	ItemID string  `json:"item_id"`
	Chance float64 `json:"chance"`
}

// Monster is a static combat template. Immutable once referenced by a battle.
type Monster struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Level            int         `json:"level"`
	Health           int         `json:"health"`
	Damage           int         `json:"damage"`
	Defense          int         `json:"defense"`
	ExperienceReward int64       `json:"experience_reward"`
	GoldReward       int64       `json:"gold_reward"`
	IsBoss           bool        `json:"is_boss"`
	LootTable        []LootEntry `json:"loot_table"`
	CreatedAt        time.Time   `json:"created_at"`
}
