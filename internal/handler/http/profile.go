package http

import (
	"encoding/json"
	"net/http"

	"github.com/JegankarthiMCA/i/internal/logger"
	"github.com/JegankarthiMCA/i/internal/utils"
	"github.com/JegankarthiMCA/i/models"
)

// profile returns the authenticated user's own record. The identity comes
// from the token claims placed in the request context by the auth
// middleware, never from the request body or query.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in context")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.services.AccountService.Profile(ctx, userID)
	if err != nil {
		log.Err(err).Msg("error occurred during profile retrieval")
		status := statusFromError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// updateProfile applies the non-empty fields of the request body to the
// authenticated user's record and returns the updated record.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in context")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var changes models.User
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	changes.ID = userID

	updated, err := h.services.AccountService.UpdateProfile(ctx, changes)
	if err != nil {
		log.Err(err).Msg("error occurred during profile update")
		status := statusFromError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
