package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nyxa-games/emberdeep/internal/domain"
	"github.com/nyxa-games/emberdeep/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode through a pooled buffer so a marshal failure never produces a
	// half-written body
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and maps the error onto a
// user-facing HTTP response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Debug(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgProfileNotFoundError  = "Profile not found"
	ErrMsgUsernameTakenError    = "That username is already taken"
	ErrMsgDungeonNotFoundError  = "Dungeon not found"
	ErrMsgMonsterNotFoundError  = "Monster not found"
	ErrMsgBattleNotFoundError   = "Battle not found"
	ErrMsgBattleInProgressError = "You already have a battle in progress"
	ErrMsgBattleFinishedError   = "That battle is already over"
	ErrMsgQuestNotFoundError    = "Quest not found"
	ErrMsgQuestAcceptedError    = "You have already accepted that quest"
	ErrMsgQuestNotActiveError   = "That quest is no longer active"
	ErrMsgQuestNotCompleteError = "Quest progress is not complete yet"
	ErrMsgQuestWorkDoneError    = "Quest work is already finished"
	ErrMsgLevelRequirementError = "Your level is too low for that"
	ErrMsgTickConflictError     = "Already advanced this tick. Try again shortly."
	ErrMsgAlreadySettledError   = "Rewards were already granted"
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgInvalidInputError     = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, ErrMsgProfileNotFoundError
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, ErrMsgUsernameTakenError
	case errors.Is(err, domain.ErrDungeonNotFound):
		return http.StatusNotFound, ErrMsgDungeonNotFoundError
	case errors.Is(err, domain.ErrMonsterNotFound):
		return http.StatusNotFound, ErrMsgMonsterNotFoundError
	case errors.Is(err, domain.ErrBattleNotFound):
		return http.StatusNotFound, ErrMsgBattleNotFoundError
	case errors.Is(err, domain.ErrBattleInProgress):
		return http.StatusConflict, ErrMsgBattleInProgressError
	case errors.Is(err, domain.ErrBattleFinished):
		return http.StatusConflict, ErrMsgBattleFinishedError
	case errors.Is(err, domain.ErrQuestNotFound):
		return http.StatusNotFound, ErrMsgQuestNotFoundError
	case errors.Is(err, domain.ErrQuestAlreadyAccepted):
		return http.StatusConflict, ErrMsgQuestAcceptedError
	case errors.Is(err, domain.ErrQuestNotActive):
		return http.StatusConflict, ErrMsgQuestNotActiveError
	case errors.Is(err, domain.ErrQuestNotComplete):
		return http.StatusBadRequest, ErrMsgQuestNotCompleteError
	case errors.Is(err, domain.ErrQuestWorkFinished):
		return http.StatusConflict, ErrMsgQuestWorkDoneError
	case errors.Is(err, domain.ErrLevelRequirement):
		return http.StatusForbidden, ErrMsgLevelRequirementError
	case errors.Is(err, domain.ErrTickConflict):
		return http.StatusConflict, ErrMsgTickConflictError
	case errors.Is(err, domain.ErrAlreadySettled):
		return http.StatusConflict, ErrMsgAlreadySettledError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
