package handler

import (
	"net/http"

	"github.com/nyxa-games/emberdeep/internal/battle"
)

// EnterDungeonRequest is the request body for starting a battle
type EnterDungeonRequest struct {
	ProfileID string `json:"profile_id" validate:"required,uuid"`
	DungeonID string `json:"dungeon_id" validate:"required,uuid"`
}

// HandleEnterDungeon starts a battle at the profile's current dungeon level
func HandleEnterDungeon(svc battle.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EnterDungeonRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Enter dungeon"); err != nil {
			return
		}

		started, err := svc.EnterDungeon(r.Context(), req.ProfileID, req.DungeonID)
		if err != nil {
			respondServiceError(w, r, "Enter dungeon", err)
			return
		}

		respondJSON(w, http.StatusCreated, started)
	}
}

// HandleGetBattle returns a battle by ID
func HandleGetBattle(svc battle.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		battleID, ok := GetPathParam(r, w, "battleID")
		if !ok {
			return
		}

		b, err := svc.GetBattle(r.Context(), battleID)
		if err != nil {
			respondServiceError(w, r, "Get battle", err)
			return
		}

		respondJSON(w, http.StatusOK, b)
	}
}

// HandleGetActiveBattle returns the profile's in-progress battle
func HandleGetActiveBattle(svc battle.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, ok := GetQueryParam(r, w, "profile_id")
		if !ok {
			return
		}

		b, err := svc.GetActiveBattle(r.Context(), profileID)
		if err != nil {
			respondServiceError(w, r, "Get active battle", err)
			return
		}

		respondJSON(w, http.StatusOK, b)
	}
}

// HandleResolveTurn advances a battle by one turn. Clients polling faster
// than the tick cadence see a 409 when the sweep already advanced it.
func HandleResolveTurn(svc battle.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		battleID, ok := GetPathParam(r, w, "battleID")
		if !ok {
			return
		}

		b, err := svc.ResolveTurn(r.Context(), battleID)
		if err != nil {
			respondServiceError(w, r, "Resolve battle turn", err)
			return
		}

		respondJSON(w, http.StatusOK, b)
	}
}
