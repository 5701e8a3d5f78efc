package handler

import (
	"net/http"

	"github.com/nyxa-games/emberdeep/internal/domain"
	"github.com/nyxa-games/emberdeep/internal/quest"
)

// AcceptQuestRequest is the request body for taking a quest off the board
type AcceptQuestRequest struct {
	ProfileID string `json:"profile_id" validate:"required,uuid"`
	QuestID   string `json:"quest_id" validate:"required,uuid"`
}

// SetWorkingRequest is the request body for toggling quest work
type SetWorkingRequest struct {
	ProfileID string `json:"profile_id" validate:"required,uuid"`
	Working   *bool  `json:"working" validate:"required"`
}

// CompleteQuestRequest is the request body for turning in a quest
type CompleteQuestRequest struct {
	ProfileID string `json:"profile_id" validate:"required,uuid"`
}

// HandleGetQuestBoard returns quest templates the profile can accept
func HandleGetQuestBoard(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, ok := GetQueryParam(r, w, "profile_id")
		if !ok {
			return
		}

		board, err := svc.GetQuestBoard(r.Context(), profileID)
		if err != nil {
			respondServiceError(w, r, "Get quest board", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: board})
	}
}

// HandleAcceptQuest takes a quest from the board
func HandleAcceptQuest(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AcceptQuestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Accept quest"); err != nil {
			return
		}

		accepted, err := svc.Accept(r.Context(), req.ProfileID, req.QuestID)
		if err != nil {
			respondServiceError(w, r, "Accept quest", err)
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{Message: MsgQuestAccepted, Data: accepted})
	}
}

// HandleSetQuestWorking toggles whether a quest accrues progress
func HandleSetQuestWorking(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerQuestID, ok := GetPathParam(r, w, "playerQuestID")
		if !ok {
			return
		}

		var req SetWorkingRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set quest working"); err != nil {
			return
		}

		updated, err := svc.SetWorking(r.Context(), req.ProfileID, playerQuestID, *req.Working)
		if err != nil {
			respondServiceError(w, r, "Set quest working", err)
			return
		}

		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleCompleteQuest turns in a fully progressed quest for its rewards
func HandleCompleteQuest(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerQuestID, ok := GetPathParam(r, w, "playerQuestID")
		if !ok {
			return
		}

		var req CompleteQuestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Complete quest"); err != nil {
			return
		}

		completed, err := svc.Complete(r.Context(), req.ProfileID, playerQuestID)
		if err != nil {
			respondServiceError(w, r, "Complete quest", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: MsgQuestCompleted, Data: completed})
	}
}

// HandleGetPlayerQuest returns one of the profile's quests
func HandleGetPlayerQuest(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerQuestID, ok := GetPathParam(r, w, "playerQuestID")
		if !ok {
			return
		}
		profileID, ok := GetQueryParam(r, w, "profile_id")
		if !ok {
			return
		}

		pq, err := svc.GetPlayerQuest(r.Context(), profileID, playerQuestID)
		if err != nil {
			respondServiceError(w, r, "Get player quest", err)
			return
		}

		respondJSON(w, http.StatusOK, pq)
	}
}

// HandleListPlayerQuests returns the profile's quests, optionally filtered
// by status
func HandleListPlayerQuests(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, ok := GetQueryParam(r, w, "profile_id")
		if !ok {
			return
		}

		var status *domain.QuestStatus
		if raw := r.URL.Query().Get("status"); raw != "" {
			parsed := domain.QuestStatus(raw)
			if !parsed.Valid() {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidStatus)
				return
			}
			status = &parsed
		}

		quests, err := svc.ListPlayerQuests(r.Context(), profileID, status)
		if err != nil {
			respondServiceError(w, r, "List player quests", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: quests})
	}
}
