package handler

import (
	"net/http"

	"github.com/nyxa-games/emberdeep/internal/battle"
)

// HandleListDungeons returns all dungeon definitions
func HandleListDungeons(svc battle.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dungeons, err := svc.ListDungeons(r.Context())
		if err != nil {
			respondServiceError(w, r, "List dungeons", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: dungeons})
	}
}

// HandleGetDungeonProgress returns a profile's progress through a dungeon
func HandleGetDungeonProgress(svc battle.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dungeonID, ok := GetPathParam(r, w, "dungeonID")
		if !ok {
			return
		}
		profileID, ok := GetQueryParam(r, w, "profile_id")
		if !ok {
			return
		}

		progress, err := svc.GetDungeonProgress(r.Context(), profileID, dungeonID)
		if err != nil {
			respondServiceError(w, r, "Get dungeon progress", err)
			return
		}

		respondJSON(w, http.StatusOK, progress)
	}
}
