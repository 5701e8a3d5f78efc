package domain

import "time"

// Activity type constants for the audit trail
const (
	ActivityEnterDungeon   = "enter_dungeon"
	ActivityBattleVictory  = "battle_victory"
	ActivityBattleDefeat   = "battle_defeat"
	ActivityAcceptQuest    = "accept_quest"
	ActivityStartQuestWork = "start_quest_work"
	ActivityStopQuestWork  = "stop_quest_work"
	ActivityQuestProgress  = "quest_progress"
	ActivityCompleteQuest  = "complete_quest"
	ActivityLevelUp        = "level_up"
)

// ActivityEntry is an append-only audit record. The core never mutates or
// deletes entries, and a failed write never rolls back the state change it
// documents.
type ActivityEntry struct {
	ID           int64     `json:"id"`
	ProfileID    string    `json:"profile_id"`
	ActivityType string    `json:"activity_type"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}
