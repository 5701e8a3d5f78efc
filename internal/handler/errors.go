package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query/path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgMissingPathParam  = "Missing %s path parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidStatus     = "Invalid status filter. Valid options: active, completed, failed"

	// Profile error messages
	ErrMsgCreateProfileFailed = "Failed to create profile"
	ErrMsgGetProfileFailed    = "Failed to retrieve profile"
	ErrMsgGetInventoryFailed  = "Failed to retrieve inventory"
	ErrMsgGetActivityFailed   = "Failed to retrieve activity feed"
	ErrMsgEquipItemFailed     = "Failed to update equipment"

	// Dungeon/battle error messages
	ErrMsgListDungeonsFailed = "Failed to retrieve dungeons"
	ErrMsgGetProgressFailed  = "Failed to retrieve dungeon progress"
	ErrMsgEnterDungeonFailed = "Failed to enter dungeon"
	ErrMsgGetBattleFailed    = "Failed to retrieve battle"
	ErrMsgResolveTurnFailed  = "Failed to resolve battle turn"

	// Quest error messages
	ErrMsgGetQuestBoardFailed = "Failed to retrieve quest board"
	ErrMsgAcceptQuestFailed   = "Failed to accept quest"
	ErrMsgSetWorkingFailed    = "Failed to update quest work state"
	ErrMsgCompleteQuestFailed = "Failed to complete quest"
	ErrMsgListQuestsFailed    = "Failed to retrieve quests"
)

// Success messages for API responses
const (
	MsgProfileCreated = "Profile created successfully"
	MsgQuestAccepted  = "Quest accepted"
	MsgQuestCompleted = "Quest completed! Rewards granted."
	MsgItemEquipped   = "Item equipped"
	MsgItemUnequipped = "Item unequipped"
)
