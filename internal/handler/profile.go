package handler

import (
	"net/http"

	"github.com/nyxa-games/emberdeep/internal/activity"
	"github.com/nyxa-games/emberdeep/internal/domain"
	"github.com/nyxa-games/emberdeep/internal/profile"
)

// CreateProfileRequest is the request body for character creation
type CreateProfileRequest struct {
	Username string `json:"username" validate:"required,min=3,max=24,excludesall= /\\"`
	Class    string `json:"class" validate:"required,class"`
}

// HandleCreateProfile creates a new character profile
func HandleCreateProfile(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create profile"); err != nil {
			return
		}

		created, err := svc.Create(r.Context(), req.Username, domain.CharacterClass(req.Class))
		if err != nil {
			respondServiceError(w, r, "Create profile", err)
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{Message: MsgProfileCreated, Data: created})
	}
}

// HandleGetProfile returns a profile with derived level info
func HandleGetProfile(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, ok := GetPathParam(r, w, "profileID")
		if !ok {
			return
		}

		view, err := svc.Get(r.Context(), profileID)
		if err != nil {
			respondServiceError(w, r, "Get profile", err)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}

// HandleGetProfileByUsername returns a profile looked up by username
func HandleGetProfileByUsername(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := GetQueryParam(r, w, "username")
		if !ok {
			return
		}

		view, err := svc.GetByUsername(r.Context(), username)
		if err != nil {
			respondServiceError(w, r, "Get profile by username", err)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}

// HandleGetInventory returns the profile's inventory
func HandleGetInventory(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, ok := GetPathParam(r, w, "profileID")
		if !ok {
			return
		}

		items, err := svc.Inventory(r.Context(), profileID)
		if err != nil {
			respondServiceError(w, r, "Get inventory", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}

// HandleGetActivity returns the profile's recent activity feed
func HandleGetActivity(svc activity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, ok := GetPathParam(r, w, "profileID")
		if !ok {
			return
		}

		limit, ok := GetLimitParam(r, w)
		if !ok {
			return
		}

		entries, err := svc.Feed(r.Context(), profileID, limit)
		if err != nil {
			respondServiceError(w, r, "Get activity feed", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: entries})
	}
}

// HandleEquipItem equips an owned inventory item
func HandleEquipItem(svc profile.Service) http.HandlerFunc {
	return setEquippedHandler(svc, true, MsgItemEquipped, "Equip item")
}

// HandleUnequipItem unequips an owned inventory item
func HandleUnequipItem(svc profile.Service) http.HandlerFunc {
	return setEquippedHandler(svc, false, MsgItemUnequipped, "Unequip item")
}

func setEquippedHandler(svc profile.Service, equipped bool, successMsg, opName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, ok := GetPathParam(r, w, "profileID")
		if !ok {
			return
		}
		inventoryItemID, ok := GetPathParam(r, w, "inventoryItemID")
		if !ok {
			return
		}

		if err := svc.SetEquipped(r.Context(), profileID, inventoryItemID, equipped); err != nil {
			respondServiceError(w, r, opName, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: successMsg})
	}
}
