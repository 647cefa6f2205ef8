package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/service"
	"github.com/MKhiriev/expense-tracker/internal/store"
	"github.com/MKhiriev/expense-tracker/internal/utils"
	"github.com/MKhiriev/expense-tracker/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserAlreadyExists):
			log.Err(err).Msg("username or email already registered")
			http.Error(w, "username or email already registered", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, registeredUser, http.StatusOK)
}

// login authenticates a user from a form-encoded username/password pair and
// responds with a bearer token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form data was passed")
		http.Error(w, "invalid form data was passed", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	foundUser, err := h.services.AuthService.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided),
			errors.Is(err, store.ErrUserNotFound),
			errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Str("username", username).Msg("incorrect username or password")
			http.Error(w, "incorrect username or password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.ID).Str("username", foundUser.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}, http.StatusOK)
}
