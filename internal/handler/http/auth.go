package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JegankarthiMCA/i/internal/logger"
	"github.com/JegankarthiMCA/i/internal/service"
	"github.com/JegankarthiMCA/i/internal/store"
	"github.com/JegankarthiMCA/i/internal/utils"
	"github.com/JegankarthiMCA/i/models"
)

// register creates a new account.
//
// The endpoint follows the always-200 contract: every domain outcome,
// including duplicate email and internal failure, is reported with HTTP 200
// and a {status, data} body. Only a malformed request body yields a
// transport-level 400.
//
// A duplicate email detected either by the pre-check or by the database
// unique constraint (the loser of a concurrent registration race) produces
// the same "User already exists" message.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.AuthService.RegisterUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.Error(service.ErrInvalidDataProvided.Error()), http.StatusOK)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			utils.WriteJSON(w, models.Error(msgUserAlreadyExists), http.StatusOK)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.Error(msgInternalError), http.StatusOK)
			return
		}
	}

	utils.WriteJSON(w, models.OK(msgUserCreated), http.StatusOK)
}

// login verifies credentials and issues a bearer token.
//
// Domain outcomes share HTTP 200 with a {status, data} body: an unknown email
// and a wrong password are distinguished only by the message text, and a
// successful login carries the signed token in the data field. Unexpected
// failures respond 500 without leaking the internal cause.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.Error(service.ErrInvalidDataProvided.Error()), http.StatusOK)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Msg("no user was found")
			utils.WriteJSON(w, models.Error(msgUserDoesntExist), http.StatusOK)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password")
			utils.WriteJSON(w, models.Error(msgInvalidPassword), http.StatusOK)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.Error(msgInternalError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.ID).Str("email", foundUser.Email).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.Error(msgInternalError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.OK(token.SignedString), http.StatusOK)
}
