package domain

import "time"

// CharacterClass identifies a playable archetype
type CharacterClass string

// Playable character classes
const (
	ClassWarrior CharacterClass = "warrior"
	ClassMage    CharacterClass = "mage"
	ClassRogue   CharacterClass = "rogue"
)

// ClassBaseStats holds the starting attribute spread for a class
type ClassBaseStats struct {
	Strength     int `json:"strength"`
	Intelligence int `json:"intelligence"`
	Dexterity    int `json:"dexterity"`
}

// CharacterClassStats maps each class to its starting attributes
var CharacterClassStats = map[CharacterClass]ClassBaseStats{
	ClassWarrior: {Strength: 15, Intelligence: 8, Dexterity: 10},
	ClassMage:    {Strength: 6, Intelligence: 15, Dexterity: 8},
	ClassRogue:   {Strength: 8, Intelligence: 10, Dexterity: 15},
}

// Valid reports whether the class is one of the fixed enumeration
func (c CharacterClass) Valid() bool {
	_, ok := CharacterClassStats[c]
	return ok
}

// Profile represents a player character record.
// Level is derived from Experience (see internal/level); the stored column is a
// convenience copy refreshed whenever experience changes under settlement.
type Profile struct {
	ID           string         `json:"id"`
	Username     string         `json:"username"`
	Class        CharacterClass `json:"character_class"`
	Level        int            `json:"level"`
	Experience   int64          `json:"experience"`
	Gold         int64          `json:"gold"`
	Health       int            `json:"health"`
	MaxHealth    int            `json:"max_health"`
	Strength     int            `json:"strength"`
	Intelligence int            `json:"intelligence"`
	Dexterity    int            `json:"dexterity"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
