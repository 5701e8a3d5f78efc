package domain

import "time"

// QuestDifficulty is the closed difficulty enumeration
type QuestDifficulty string

// Quest difficulties
const (
	DifficultyEasy   QuestDifficulty = "easy"
	DifficultyMedium QuestDifficulty = "medium"
	DifficultyHard   QuestDifficulty = "hard"
	DifficultyEpic   QuestDifficulty = "epic"
)

// DifficultyProgressRates maps difficulty to the base progress percentage
// accrued per tick while a quest is being worked.
var DifficultyProgressRates = map[QuestDifficulty]int{
	DifficultyEasy:   10,
	DifficultyMedium: 5,
	DifficultyHard:   3,
	DifficultyEpic:   1,
}

// RewardMultipliers scales a quest template's base rewards by difficulty.
// Applied when templates are authored; stored rewards are final values.
type RewardMultipliers struct {
	Experience float64 `json:"experience"`
	Gold       float64 `json:"gold"`
	ItemChance float64 `json:"item_chance"`
}

// DifficultyRewardMultipliers maps difficulty to its reward scaling
var DifficultyRewardMultipliers = map[QuestDifficulty]RewardMultipliers{
	DifficultyEasy:   {Experience: 1, Gold: 1, ItemChance: 0.1},
	DifficultyMedium: {Experience: 1.5, Gold: 1.5, ItemChance: 0.25},
	DifficultyHard:   {Experience: 2.5, Gold: 2, ItemChance: 0.5},
	DifficultyEpic:   {Experience: 4, Gold: 3, ItemChance: 1},
}

// Valid reports whether the difficulty is one of the fixed enumeration
func (d QuestDifficulty) Valid() bool {
	_, ok := DifficultyProgressRates[d]
	return ok
}

// QuestStatus is the player-quest lifecycle state
type QuestStatus string

// Player quest lifecycle states
const (
	QuestStatusActive    QuestStatus = "active"
	QuestStatusCompleted QuestStatus = "completed"
	QuestStatusFailed    QuestStatus = "failed"
)

// Valid reports whether the status is one of the fixed enumeration
func (s QuestStatus) Valid() bool {
	switch s {
	case QuestStatusActive, QuestStatusCompleted, QuestStatusFailed:
		return true
	}
	return false
}

// Quest is a quest template offered on the board
type Quest struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Difficulty       QuestDifficulty `json:"difficulty"`
	LevelRequirement int             `json:"level_requirement"`
	ExperienceReward int64           `json:"experience_reward"`
	GoldReward       int64           `json:"gold_reward"`
	ItemRewardID     *string         `json:"item_reward_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// PlayerQuest is a profile's acceptance of a quest template.
// Progress is monotonically non-decreasing while active and capped at 100;
// once it reaches 100 the working flag is forced false and the quest waits
// for an explicit completion intent.
type PlayerQuest struct {
	ID          string      `json:"id"`
	ProfileID   string      `json:"profile_id"`
	QuestID     string      `json:"quest_id"`
	Status      QuestStatus `json:"status"`
	Progress    int         `json:"progress"`
	IsWorking   bool        `json:"is_working"`
	StartedAt   time.Time   `json:"started_at"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`

	// Joined field
	Quest *Quest `json:"quest,omitempty"`
}
