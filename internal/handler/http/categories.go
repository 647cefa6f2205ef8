package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/utils"
	"github.com/MKhiriev/expense-tracker/models"
)

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.CategoryUpsert
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.CategoryService.CreateCategory(ctx, payload)
	if err != nil {
		log.Err(err).Msg("error creating category")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page, err := getPageFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid pagination parameters")
		http.Error(w, "invalid pagination parameters", http.StatusBadRequest)
		return
	}

	categories, err := h.services.CategoryService.GetCategories(ctx, page)
	if err != nil {
		log.Err(err).Msg("error listing categories")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, categories, http.StatusOK)
}
