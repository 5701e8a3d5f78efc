package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Profile errors
	ErrMsgProfileNotFound = "profile not found"
	ErrMsgUsernameTaken   = "username already taken"

	// Dungeon/battle errors
	ErrMsgDungeonNotFound  = "dungeon not found"
	ErrMsgMonsterNotFound  = "monster not found"
	ErrMsgBattleNotFound   = "battle not found"
	ErrMsgBattleInProgress = "a battle is already in progress"
	ErrMsgBattleFinished   = "battle is already finished"

	// Quest errors
	ErrMsgQuestNotFound        = "quest not found"
	ErrMsgQuestAlreadyAccepted = "quest already accepted"
	ErrMsgQuestNotActive       = "quest is not active"
	ErrMsgQuestNotComplete     = "quest progress is not complete"
	ErrMsgQuestWorkFinished    = "quest work is finished"

	// Gate errors
	ErrMsgLevelRequirement = "level requirement not met"

	// Concurrency errors
	ErrMsgTickConflict   = "tick lost the race to a concurrent writer"
	ErrMsgAlreadySettled = "rewards already settled"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Profile errors
	ErrProfileNotFound = errors.New(ErrMsgProfileNotFound)
	ErrUsernameTaken   = errors.New(ErrMsgUsernameTaken)

	// Dungeon/battle errors
	ErrDungeonNotFound  = errors.New(ErrMsgDungeonNotFound)
	ErrMonsterNotFound  = errors.New(ErrMsgMonsterNotFound)
	ErrBattleNotFound   = errors.New(ErrMsgBattleNotFound)
	ErrBattleInProgress = errors.New(ErrMsgBattleInProgress)
	ErrBattleFinished   = errors.New(ErrMsgBattleFinished)

	// Quest errors
	ErrQuestNotFound        = errors.New(ErrMsgQuestNotFound)
	ErrQuestAlreadyAccepted = errors.New(ErrMsgQuestAlreadyAccepted)
	ErrQuestNotActive       = errors.New(ErrMsgQuestNotActive)
	ErrQuestNotComplete     = errors.New(ErrMsgQuestNotComplete)
	ErrQuestWorkFinished    = errors.New(ErrMsgQuestWorkFinished)

	// Gate errors
	ErrLevelRequirement = errors.New(ErrMsgLevelRequirement)

	// Concurrency errors. A tick conflict means another writer advanced the
	// record first; callers discard their delta and move on.
	ErrTickConflict   = errors.New(ErrMsgTickConflict)
	ErrAlreadySettled = errors.New(ErrMsgAlreadySettled)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
