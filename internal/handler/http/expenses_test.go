package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/expense-tracker/internal/service"
	"github.com/MKhiriev/expense-tracker/internal/store"
	"github.com/MKhiriev/expense-tracker/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passingAuth returns an AuthService mock that accepts any bearer token and
// resolves it to aliceUser.
func passingAuth() *mockAuthService {
	return &mockAuthService{
		verifyTokenFn: func(_ context.Context, _ string) (models.User, error) {
			return aliceUser, nil
		},
	}
}

// newExpenseRouter builds the full router with a passing auth middleware and
// the given expense service mock.
func newExpenseRouter(t *testing.T, expenses service.ExpenseService) *chi.Mux {
	t.Helper()
	h := newTestHandler(t, &service.Services{
		AuthService:    passingAuth(),
		ExpenseService: expenses,
	})
	return h.Init()
}

func doAuthorized(router *chi.Mux, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateExpense_ForcesAuthenticatedOwner(t *testing.T) {
	expenses := &mockExpenseService{
		createFn: func(_ context.Context, userID int64, payload models.ExpenseUpsert) (models.Expense, error) {
			assert.Equal(t, aliceUser.ID, userID)
			require.NotNil(t, payload.Amount)
			return models.Expense{
				ID:         1,
				Amount:     *payload.Amount,
				Date:       time.Now(),
				CategoryID: *payload.CategoryID,
				UserID:     userID,
			}, nil
		},
	}

	router := newExpenseRouter(t, expenses)
	rec := doAuthorized(router, http.MethodPost, "/api/expenses/",
		`{"description":"lunch","amount":12.5,"category_id":3,"user_id":12345}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var created models.Expense
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, aliceUser.ID, created.UserID, "client-supplied user_id must be ignored")
}

func TestCreateExpense_MissingAmount(t *testing.T) {
	expenses := &mockExpenseService{
		createFn: func(_ context.Context, _ int64, _ models.ExpenseUpsert) (models.Expense, error) {
			return models.Expense{}, service.ErrInvalidDataProvided
		},
	}

	router := newExpenseRouter(t, expenses)
	rec := doAuthorized(router, http.MethodPost, "/api/expenses/", `{"category_id":3}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListExpenses_PaginationDefaults(t *testing.T) {
	expenses := &mockExpenseService{
		listFn: func(_ context.Context, userID int64, categoryIDs []int64, page store.Page) ([]models.Expense, error) {
			assert.Equal(t, aliceUser.ID, userID)
			assert.Nil(t, categoryIDs)
			assert.Equal(t, store.Page{Skip: 0, Limit: 100}, page)
			return []models.Expense{}, nil
		},
	}

	router := newExpenseRouter(t, expenses)
	rec := doAuthorized(router, http.MethodGet, "/api/expenses/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListExpenses_ExplicitPagination(t *testing.T) {
	expenses := &mockExpenseService{
		listFn: func(_ context.Context, _ int64, _ []int64, page store.Page) ([]models.Expense, error) {
			assert.Equal(t, store.Page{Skip: 20, Limit: 10}, page)
			return []models.Expense{}, nil
		},
	}

	router := newExpenseRouter(t, expenses)
	rec := doAuthorized(router, http.MethodGet, "/api/expenses/?skip=20&limit=10", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListExpenses_BadPagination(t *testing.T) {
	router := newExpenseRouter(t, &mockExpenseService{})
	rec := doAuthorized(router, http.MethodGet, "/api/expenses/?skip=abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListExpenses_CategoryFilter(t *testing.T) {
	expenses := &mockExpenseService{
		listFn: func(_ context.Context, _ int64, categoryIDs []int64, _ store.Page) ([]models.Expense, error) {
			assert.Equal(t, []int64{3, 4}, categoryIDs)
			return []models.Expense{}, nil
		},
	}

	router := newExpenseRouter(t, expenses)
	rec := doAuthorized(router, http.MethodGet, "/api/expenses/?category_id=3&category_id=4", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetExpense_NotOwnedLooksMissing(t *testing.T) {
	expenses := &mockExpenseService{
		getFn: func(_ context.Context, id, userID int64) (models.Expense, error) {
			assert.Equal(t, int64(42), id)
			assert.Equal(t, aliceUser.ID, userID)
			return models.Expense{}, store.ErrExpenseNotFound
		},
	}

	router := newExpenseRouter(t, expenses)
	rec := doAuthorized(router, http.MethodGet, "/api/expenses/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetExpense_BadID(t *testing.T) {
	router := newExpenseRouter(t, &mockExpenseService{})
	rec := doAuthorized(router, http.MethodGet, "/api/expenses/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateExpense_FullReplacement(t *testing.T) {
	expenses := &mockExpenseService{
		updateFn: func(_ context.Context, id, userID int64, payload models.ExpenseUpsert) (models.Expense, error) {
			assert.Equal(t, int64(1), id)
			assert.Equal(t, aliceUser.ID, userID)
			require.NotNil(t, payload.Amount)
			return models.Expense{ID: id, Amount: *payload.Amount, CategoryID: *payload.CategoryID, UserID: userID}, nil
		},
	}

	router := newExpenseRouter(t, expenses)
	rec := doAuthorized(router, http.MethodPut, "/api/expenses/1",
		`{"amount":20,"category_id":4}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Expense
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 20.0, updated.Amount)
}

func TestUpdateExpense_RejectsPartialPayload(t *testing.T) {
	expenses := &mockExpenseService{
		updateFn: func(_ context.Context, _, _ int64, _ models.ExpenseUpsert) (models.Expense, error) {
			return models.Expense{}, service.ErrInvalidDataProvided
		},
	}

	router := newExpenseRouter(t, expenses)
	rec := doAuthorized(router, http.MethodPut, "/api/expenses/1", `{"amount":20}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteExpense_Success(t *testing.T) {
	expenses := &mockExpenseService{
		deleteFn: func(_ context.Context, id, userID int64) error {
			assert.Equal(t, int64(1), id)
			assert.Equal(t, aliceUser.ID, userID)
			return nil
		},
	}

	router := newExpenseRouter(t, expenses)
	rec := doAuthorized(router, http.MethodDelete, "/api/expenses/1", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Expense deleted successfully", response.Message)
}

func TestDeleteExpense_NotFound(t *testing.T) {
	expenses := &mockExpenseService{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return store.ErrExpenseNotFound
		},
	}

	router := newExpenseRouter(t, expenses)
	rec := doAuthorized(router, http.MethodDelete, "/api/expenses/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExpenses_RequireAuthentication(t *testing.T) {
	router := newExpenseRouter(t, &mockExpenseService{})

	req := httptest.NewRequest(http.MethodGet, "/api/expenses/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), credentialsErrorMessage)
}
