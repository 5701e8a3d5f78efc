package config

import "time"

// Default values for tunable settings
const (
	DefaultPort = 8080

	// DefaultBattleTickInterval is how often active battles resolve a turn
	DefaultBattleTickInterval = 2 * time.Second

	// DefaultQuestTickInterval is how often working quests accrue progress
	DefaultQuestTickInterval = 10 * time.Second

	DefaultWorkerCount = 4
)
