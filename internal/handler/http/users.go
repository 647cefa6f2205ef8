package http

import (
	"net/http"

	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/utils"
)

// me returns the profile of the authenticated user resolved by the auth
// middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, credentialsErrorMessage, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
