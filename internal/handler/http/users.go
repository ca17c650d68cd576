package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JegankarthiMCA/i/internal/logger"
	"github.com/JegankarthiMCA/i/internal/store"
	"github.com/JegankarthiMCA/i/internal/utils"
	"github.com/JegankarthiMCA/i/models"
)

// listUsers returns every registered user with passwords stripped. An empty
// database yields an empty JSON array, not an error.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.AccountService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("error occurred during users retrieval")
		utils.WriteJSON(w, models.Error(msgInternalError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// getUserByEmail returns a single user looked up by the email path parameter,
// password stripped.
func (h *Handler) getUserByEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email := chi.URLParam(r, "email")

	user, err := h.services.AccountService.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("email", email).Msg("no user was found")
			utils.WriteJSON(w, models.ErrorMessage(msgUserNotFound), http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error occurred during user retrieval")
		utils.WriteJSON(w, models.Error(msgInternalError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// listUsersByCourse returns the users enrolled in the course named by the
// courseTitle path parameter. A course with no enrolled users is a 404.
func (h *Handler) listUsersByCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	courseTitle := chi.URLParam(r, "courseTitle")

	users, err := h.services.AccountService.ListUsersByCourse(ctx, courseTitle)
	if err != nil {
		if errors.Is(err, store.ErrNoUsersFound) {
			log.Err(err).Str("course_title", courseTitle).Msg("no users found for course")
			utils.WriteJSON(w, models.ErrorMessage(msgNoUsersForCourse), http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error occurred during users retrieval")
		utils.WriteJSON(w, models.Error(msgInternalError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// deleteUserByName removes the user whose name matches the path parameter.
func (h *Handler) deleteUserByName(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")

	if err := h.services.AccountService.DeleteUserByName(ctx, name); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("name", name).Msg("no user was found to delete")
			utils.WriteJSON(w, map[string]string{"message": msgUserNotFound}, http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error occurred during user deletion")
		utils.WriteJSON(w, map[string]string{"message": "Error deleting user"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": msgUserDeleted}, http.StatusOK)
}
