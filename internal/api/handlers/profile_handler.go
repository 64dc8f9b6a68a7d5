package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/marinval/userhub-be/internal/auth"
	"github.com/marinval/userhub-be/internal/models"
	"github.com/marinval/userhub-be/internal/services"
	"github.com/rs/zerolog/log"
)

// ProfileHandler handles HTTP requests for the authenticated user's profile.
type ProfileHandler struct {
	profiles services.ProfileServiceProvider
	users    services.UserServiceProvider
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles services.ProfileServiceProvider, users services.UserServiceProvider) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, users: users}
}

// View returns the authenticated user's profile.
func (h *ProfileHandler) View(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user id from context")
		writeServerError(w)
		return
	}

	view, err := h.profiles.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			writeMessage(w, http.StatusNotFound, false, "Profile not found.")
			return
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load profile")
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    view,
	})
}

// Update applies a partial update to the authenticated user's profile.
// Fields absent from the body are left untouched.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user id from context")
		writeServerError(w)
		return
	}

	var patch models.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if err := h.profiles.Update(r.Context(), userID, patch); err != nil {
		switch {
		case errors.Is(err, services.ErrNothingToUpdate):
			writeMessage(w, http.StatusBadRequest, false, "No fields provided.")
		case errors.Is(err, services.ErrNotModified):
			writeMessage(w, http.StatusMultipleChoices, false, "Profile could not be updated.")
		default:
			log.Error().Err(err).Str("user_id", userID).Msg("Failed to update profile")
			writeServerError(w)
		}
		return
	}

	writeMessage(w, http.StatusOK, true, "Profile updated.")
}

// Delete permanently removes the authenticated user's account. The profile
// row goes with it via the foreign key cascade.
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user id from context")
		writeServerError(w)
		return
	}

	if err := h.users.Delete(r.Context(), userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			writeMessage(w, http.StatusNotFound, false, "User not found.")
			return
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to delete user")
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  "User deleted.",
		"redirect": "/",
	})
}
