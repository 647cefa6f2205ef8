// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed HTTP client for the expense-tracker API.
//
// The primary abstraction is [APIClient], which decouples consumers (CLI
// tooling, integration tests, other services) from the wire protocol. The
// package ships an HTTP/REST implementation ([NewHTTPAPIClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/expense-tracker/models"
)

// ListParams narrows and pages a listing request. Zero values fall back to
// the server-side defaults (skip=0, limit=100).
type ListParams struct {
	Skip        uint64
	Limit       uint64
	CategoryIDs []int64
}

// APIClient defines typed access to the expense-tracker REST API.
// Implementations are responsible for serialisation, bearer-token management,
// and mapping transport-level errors to the sentinel values defined in this
// package.
type APIClient interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. Login calls it automatically.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account and returns the created user profile.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login authenticates with username/password and stores the returned
	// bearer token via SetToken.
	Login(ctx context.Context, username, password string) (models.TokenResponse, error)

	// Me returns the profile of the authenticated user.
	Me(ctx context.Context) (models.User, error)

	CreateExpense(ctx context.Context, payload models.ExpenseUpsert) (models.Expense, error)
	ListExpenses(ctx context.Context, params ListParams) ([]models.Expense, error)
	GetExpense(ctx context.Context, id int64) (models.Expense, error)
	UpdateExpense(ctx context.Context, id int64, payload models.ExpenseUpsert) (models.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error

	CreateSalary(ctx context.Context, payload models.SalaryUpsert) (models.Salary, error)
	ListSalaries(ctx context.Context, params ListParams) ([]models.Salary, error)
	GetSalary(ctx context.Context, id int64) (models.Salary, error)
	UpdateSalary(ctx context.Context, id int64, payload models.SalaryUpsert) (models.Salary, error)
	DeleteSalary(ctx context.Context, id int64) error

	CreateCategory(ctx context.Context, payload models.CategoryUpsert) (models.Category, error)
	ListCategories(ctx context.Context, params ListParams) ([]models.Category, error)
}
