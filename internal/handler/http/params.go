package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/expense-tracker/internal/store"
	"github.com/go-chi/chi/v5"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

// getPageFromRequest reads the skip/limit query parameters, falling back to
// the defaults when a parameter is absent. A non-numeric or negative value
// is a client error.
func getPageFromRequest(r *http.Request) (store.Page, error) {
	page := store.Page{Skip: defaultSkip, Limit: defaultLimit}

	if skip := r.URL.Query().Get("skip"); skip != "" {
		parsed, err := strconv.ParseUint(skip, 10, 64)
		if err != nil {
			return store.Page{}, err
		}
		page.Skip = parsed
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		parsed, err := strconv.ParseUint(limit, 10, 64)
		if err != nil {
			return store.Page{}, err
		}
		page.Limit = parsed
	}

	return page, nil
}

// getIDFromRequest reads the {id} URL parameter of the matched route.
func getIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// getCategoryIDsFromRequest reads the optional repeated category_id query
// parameter used to narrow an expense listing.
func getCategoryIDsFromRequest(r *http.Request) ([]int64, error) {
	values := r.URL.Query()["category_id"]
	if len(values) == 0 {
		return nil, nil
	}

	categoryIDs := make([]int64, 0, len(values))
	for _, value := range values {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, err
		}
		categoryIDs = append(categoryIDs, parsed)
	}

	return categoryIDs, nil
}
