// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/expense-tracker/internal/utils"
	"github.com/MKhiriev/expense-tracker/models"
)

// methodNotAllowed is registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed]. It replaces chi's plain-text default with the
// API's JSON envelope while keeping the 405 status code.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{
		Message: http.StatusText(http.StatusMethodNotAllowed),
	}, http.StatusMethodNotAllowed)
}
