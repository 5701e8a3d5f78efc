package domain

import "time"

// MaxDungeonLevel is the deepest level of any dungeon; clearing it marks the
// dungeon completed.
const MaxDungeonLevel = 10

// Dungeon is a static dungeon definition
type Dungeon struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MinLevel    int       `json:"min_level"`
	Levels      int       `json:"levels"`
	CreatedAt   time.Time `json:"created_at"`
}

// DungeonLevel binds a monster template to one level of a dungeon
type DungeonLevel struct {
	ID          string    `json:"id"`
	DungeonID   string    `json:"dungeon_id"`
	LevelNumber int       `json:"level_number"`
	MonsterID   string    `json:"monster_id"`
	IsBossLevel bool      `json:"is_boss_level"`
	CreatedAt   time.Time `json:"created_at"`

	// Joined field
	Monster *Monster `json:"monster,omitempty"`
}

// DungeonProgress tracks a profile's descent through a dungeon.
// Advanced only on battle victory; defeat never moves it.
type DungeonProgress struct {
	ID           string    `json:"id"`
	ProfileID    string    `json:"profile_id"`
	DungeonID    string    `json:"dungeon_id"`
	CurrentLevel int       `json:"current_level"`
	HighestLevel int       `json:"highest_level"`
	Completed    bool      `json:"completed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
