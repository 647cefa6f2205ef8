package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/utils"
	"github.com/MKhiriev/expense-tracker/models"
)

func (h *Handler) createSalary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, credentialsErrorMessage, http.StatusUnauthorized)
		return
	}

	var payload models.SalaryUpsert
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.SalaryService.CreateSalary(ctx, user.ID, payload)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("error creating salary")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) listSalaries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, credentialsErrorMessage, http.StatusUnauthorized)
		return
	}

	page, err := getPageFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid pagination parameters")
		http.Error(w, "invalid pagination parameters", http.StatusBadRequest)
		return
	}

	salaries, err := h.services.SalaryService.GetSalaries(ctx, user.ID, page)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("error listing salaries")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, salaries, http.StatusOK)
}

func (h *Handler) getSalary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, credentialsErrorMessage, http.StatusUnauthorized)
		return
	}

	id, err := getIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid salary id")
		http.Error(w, "invalid salary id", http.StatusBadRequest)
		return
	}

	salary, err := h.services.SalaryService.GetSalary(ctx, id, user.ID)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("user_id", user.ID).Msg("error getting salary")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, salary, http.StatusOK)
}

func (h *Handler) updateSalary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, credentialsErrorMessage, http.StatusUnauthorized)
		return
	}

	id, err := getIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid salary id")
		http.Error(w, "invalid salary id", http.StatusBadRequest)
		return
	}

	var payload models.SalaryUpsert
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.SalaryService.UpdateSalary(ctx, id, user.ID, payload)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("user_id", user.ID).Msg("error updating salary")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteSalary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, credentialsErrorMessage, http.StatusUnauthorized)
		return
	}

	id, err := getIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid salary id")
		http.Error(w, "invalid salary id", http.StatusBadRequest)
		return
	}

	if err := h.services.SalaryService.DeleteSalary(ctx, id, user.ID); err != nil {
		log.Err(err).Int64("id", id).Int64("user_id", user.ID).Msg("error deleting salary")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Salary deleted successfully"}, http.StatusOK)
}
