package repository

import (
	"context"

	"github.com/nyxa-games/emberdeep/internal/domain"
)

// WorkingQuest pairs an accruing player quest with the owning profile's
// experience total, so the sweep can compute the level bonus without a
// second read per row.
type WorkingQuest struct {
	PlayerQuest       domain.PlayerQuest
	ProfileExperience int64
}

// QuestRepository defines the interface for quest storage
type QuestRepository interface {
	// GetQuest retrieves a quest template by ID.
	// Returns domain.ErrQuestNotFound when no row matches.
	GetQuest(ctx context.Context, questID string) (*domain.Quest, error)

	// ListQuestBoard retrieves quest templates the profile can see: level
	// requirement at or below maxLevel and not already accepted.
	ListQuestBoard(ctx context.Context, profileID string, maxLevel int) ([]domain.Quest, error)

	// AcceptQuest inserts a player quest in the active state.
	// Returns domain.ErrQuestAlreadyAccepted when the profile already holds
	// the template.
	AcceptQuest(ctx context.Context, profileID, questID string) (*domain.PlayerQuest, error)

	// GetPlayerQuest retrieves a player quest with its template joined.
	// Returns domain.ErrQuestNotFound when no row matches.
	GetPlayerQuest(ctx context.Context, playerQuestID string) (*domain.PlayerQuest, error)

	// ListPlayerQuests retrieves a profile's quests with templates joined,
	// optionally filtered by status.
	ListPlayerQuests(ctx context.Context, profileID string, status *domain.QuestStatus) ([]domain.PlayerQuest, error)

	// ListWorkingQuests retrieves every quest currently accruing progress
	// (active, working, below 100), for the background sweep.
	ListWorkingQuests(ctx context.Context) ([]WorkingQuest, error)

	// SetWorking flips the working flag. The update only lands while the
	// quest is active and progress is below 100; domain.ErrQuestNotActive or
	// domain.ErrQuestWorkFinished reports which gate refused it.
	SetWorking(ctx context.Context, playerQuestID string, working bool) (*domain.PlayerQuest, error)

	// AdvanceProgress conditionally moves progress from fromProgress to
	// toProgress. The update only lands if the quest is active, working and
	// its stored progress is exactly fromProgress; otherwise
	// domain.ErrTickConflict is returned and nothing changes. Reaching 100
	// clears the working flag in the same write.
	AdvanceProgress(ctx context.Context, playerQuestID string, fromProgress, toProgress int) error
}
