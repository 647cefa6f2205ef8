package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/service"
	"github.com/MKhiriev/expense-tracker/internal/store"
	"github.com/MKhiriev/expense-tracker/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, username, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	verifyTokenFn  func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) VerifyToken(ctx context.Context, tokenString string) (models.User, error) {
	return m.verifyTokenFn(ctx, tokenString)
}

// mockExpenseService implements service.ExpenseService for unit tests.
type mockExpenseService struct {
	createFn func(ctx context.Context, userID int64, payload models.ExpenseUpsert) (models.Expense, error)
	listFn   func(ctx context.Context, userID int64, categoryIDs []int64, page store.Page) ([]models.Expense, error)
	getFn    func(ctx context.Context, id, userID int64) (models.Expense, error)
	updateFn func(ctx context.Context, id, userID int64, payload models.ExpenseUpsert) (models.Expense, error)
	deleteFn func(ctx context.Context, id, userID int64) error
}

func (m *mockExpenseService) CreateExpense(ctx context.Context, userID int64, payload models.ExpenseUpsert) (models.Expense, error) {
	return m.createFn(ctx, userID, payload)
}

func (m *mockExpenseService) GetExpenses(ctx context.Context, userID int64, categoryIDs []int64, page store.Page) ([]models.Expense, error) {
	return m.listFn(ctx, userID, categoryIDs, page)
}

func (m *mockExpenseService) GetExpense(ctx context.Context, id, userID int64) (models.Expense, error) {
	return m.getFn(ctx, id, userID)
}

func (m *mockExpenseService) UpdateExpense(ctx context.Context, id, userID int64, payload models.ExpenseUpsert) (models.Expense, error) {
	return m.updateFn(ctx, id, userID, payload)
}

func (m *mockExpenseService) DeleteExpense(ctx context.Context, id, userID int64) error {
	return m.deleteFn(ctx, id, userID)
}

// mockSalaryService implements service.SalaryService for unit tests.
type mockSalaryService struct {
	createFn func(ctx context.Context, userID int64, payload models.SalaryUpsert) (models.Salary, error)
	listFn   func(ctx context.Context, userID int64, page store.Page) ([]models.Salary, error)
	getFn    func(ctx context.Context, id, userID int64) (models.Salary, error)
	updateFn func(ctx context.Context, id, userID int64, payload models.SalaryUpsert) (models.Salary, error)
	deleteFn func(ctx context.Context, id, userID int64) error
}

func (m *mockSalaryService) CreateSalary(ctx context.Context, userID int64, payload models.SalaryUpsert) (models.Salary, error) {
	return m.createFn(ctx, userID, payload)
}

func (m *mockSalaryService) GetSalaries(ctx context.Context, userID int64, page store.Page) ([]models.Salary, error) {
	return m.listFn(ctx, userID, page)
}

func (m *mockSalaryService) GetSalary(ctx context.Context, id, userID int64) (models.Salary, error) {
	return m.getFn(ctx, id, userID)
}

func (m *mockSalaryService) UpdateSalary(ctx context.Context, id, userID int64, payload models.SalaryUpsert) (models.Salary, error) {
	return m.updateFn(ctx, id, userID, payload)
}

func (m *mockSalaryService) DeleteSalary(ctx context.Context, id, userID int64) error {
	return m.deleteFn(ctx, id, userID)
}

// mockCategoryService implements service.CategoryService for unit tests.
type mockCategoryService struct {
	createFn func(ctx context.Context, payload models.CategoryUpsert) (models.Category, error)
	listFn   func(ctx context.Context, page store.Page) ([]models.Category, error)
	seedFn   func(ctx context.Context) (int, error)
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, payload models.CategoryUpsert) (models.Category, error) {
	return m.createFn(ctx, payload)
}

func (m *mockCategoryService) GetCategories(ctx context.Context, page store.Page) ([]models.Category, error) {
	return m.listFn(ctx, page)
}

func (m *mockCategoryService) SeedDefaultCategories(ctx context.Context) (int, error) {
	return m.seedFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler whose services default to nil; tests set
// only the mocks they exercise.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	return NewHandler(services, logger.Nop())
}

// aliceUser is a convenience fixture used across multiple tests.
var aliceUser = models.User{
	ID:       9,
	Username: "alice",
	Email:    "a@x.com",
	IsActive: true,
}

func strPtr(v string) *string       { return &v }
func float64Ptr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64       { return &v }
