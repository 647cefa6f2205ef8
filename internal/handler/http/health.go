package http

import (
	"net/http"

	"github.com/MKhiriev/expense-tracker/internal/utils"
	"github.com/MKhiriev/expense-tracker/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "Welcome to Expense Tracker API"}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "healthy"}, http.StatusOK)
}
