package store

import (
	"context"

	"github.com/MKhiriev/expense-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns the persisted row with
	// server-assigned fields. Returns ErrUserAlreadyExists when the username
	// or email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks an account up by its unique username.
	// Returns ErrUserNotFound when no row matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// CategoryRepository manages the global, unscoped category list.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	GetCategories(ctx context.Context, page Page) ([]models.Category, error)

	// SeedDefaultCategories inserts the fixed default category set inside a
	// single transaction if and only if the table is empty. Returns the
	// number of rows inserted.
	SeedDefaultCategories(ctx context.Context) (int, error)
}

// ExpenseRepository manages ownership-scoped expense rows. Every read and
// mutation is filtered by user id; a row owned by someone else behaves
// exactly like a missing row.
type ExpenseRepository interface {
	CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)
	GetExpenses(ctx context.Context, filter ExpenseFilter, page Page) ([]models.Expense, error)
	GetExpense(ctx context.Context, id, userID int64) (models.Expense, error)
	UpdateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)
	DeleteExpense(ctx context.Context, id, userID int64) error
}

// SalaryRepository manages ownership-scoped salary rows with the same
// visibility rules as ExpenseRepository.
type SalaryRepository interface {
	CreateSalary(ctx context.Context, salary models.Salary) (models.Salary, error)
	GetSalaries(ctx context.Context, userID int64, page Page) ([]models.Salary, error)
	GetSalary(ctx context.Context, id, userID int64) (models.Salary, error)
	UpdateSalary(ctx context.Context, salary models.Salary) (models.Salary, error)
	DeleteSalary(ctx context.Context, id, userID int64) error
}
