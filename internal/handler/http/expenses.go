package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/utils"
	"github.com/MKhiriev/expense-tracker/models"
)

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, credentialsErrorMessage, http.StatusUnauthorized)
		return
	}

	var payload models.ExpenseUpsert
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ExpenseService.CreateExpense(ctx, user.ID, payload)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("error creating expense")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
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

	categoryIDs, err := getCategoryIDsFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid category_id parameter")
		http.Error(w, "invalid category_id parameter", http.StatusBadRequest)
		return
	}

	expenses, err := h.services.ExpenseService.GetExpenses(ctx, user.ID, categoryIDs, page)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("error listing expenses")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, expenses, http.StatusOK)
}

func (h *Handler) getExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, credentialsErrorMessage, http.StatusUnauthorized)
		return
	}

	id, err := getIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid expense id")
		http.Error(w, "invalid expense id", http.StatusBadRequest)
		return
	}

	expense, err := h.services.ExpenseService.GetExpense(ctx, id, user.ID)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("user_id", user.ID).Msg("error getting expense")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, expense, http.StatusOK)
}

func (h *Handler) updateExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, credentialsErrorMessage, http.StatusUnauthorized)
		return
	}

	id, err := getIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid expense id")
		http.Error(w, "invalid expense id", http.StatusBadRequest)
		return
	}

	var payload models.ExpenseUpsert
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.ExpenseService.UpdateExpense(ctx, id, user.ID, payload)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("user_id", user.ID).Msg("error updating expense")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, credentialsErrorMessage, http.StatusUnauthorized)
		return
	}

	id, err := getIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid expense id")
		http.Error(w, "invalid expense id", http.StatusBadRequest)
		return
	}

	if err := h.services.ExpenseService.DeleteExpense(ctx, id, user.ID); err != nil {
		log.Err(err).Int64("id", id).Int64("user_id", user.ID).Msg("error deleting expense")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Expense deleted successfully"}, http.StatusOK)
}
