package service

import (
	"context"

	"github.com/MKhiriev/expense-tracker/internal/store"
	"github.com/MKhiriev/expense-tracker/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// VerifyToken validates a raw bearer token and resolves it to the active
	// account it was issued for.
	VerifyToken(ctx context.Context, tokenString string) (models.User, error)
}

type ExpenseService interface {
	CreateExpense(ctx context.Context, userID int64, payload models.ExpenseUpsert) (models.Expense, error)
	GetExpenses(ctx context.Context, userID int64, categoryIDs []int64, page store.Page) ([]models.Expense, error)
	GetExpense(ctx context.Context, id, userID int64) (models.Expense, error)
	UpdateExpense(ctx context.Context, id, userID int64, payload models.ExpenseUpsert) (models.Expense, error)
	DeleteExpense(ctx context.Context, id, userID int64) error
}

type SalaryService interface {
	CreateSalary(ctx context.Context, userID int64, payload models.SalaryUpsert) (models.Salary, error)
	GetSalaries(ctx context.Context, userID int64, page store.Page) ([]models.Salary, error)
	GetSalary(ctx context.Context, id, userID int64) (models.Salary, error)
	UpdateSalary(ctx context.Context, id, userID int64, payload models.SalaryUpsert) (models.Salary, error)
	DeleteSalary(ctx context.Context, id, userID int64) error
}

type CategoryService interface {
	CreateCategory(ctx context.Context, payload models.CategoryUpsert) (models.Category, error)
	GetCategories(ctx context.Context, page store.Page) ([]models.Category, error)

	// SeedDefaultCategories populates the category table with the built-in
	// set on first start. Returns the number of categories inserted.
	SeedDefaultCategories(ctx context.Context) (int, error)
}
