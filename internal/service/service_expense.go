package service

import (
	"context"
	"time"

	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/store"
	"github.com/MKhiriev/expense-tracker/models"
)

// expenseService is the concrete implementation of ExpenseService.
// It validates client payloads and forces ownership onto every repository
// call so that a caller can never reach another user's rows.
type expenseService struct {
	expenseRepository store.ExpenseRepository

	logger *logger.Logger
}

// NewExpenseService constructs an ExpenseService backed by the given
// repository.
func NewExpenseService(expenseRepository store.ExpenseRepository, logger *logger.Logger) ExpenseService {
	return &expenseService{
		expenseRepository: expenseRepository,
		logger:            logger,
	}
}

// CreateExpense records a new expense for the given user. Amount and
// CategoryID are required; Description may be omitted. The record date is
// assigned server-side at creation time.
func (e *expenseService) CreateExpense(ctx context.Context, userID int64, payload models.ExpenseUpsert) (models.Expense, error) {
	log := logger.FromContext(ctx)

	if payload.Amount == nil || payload.CategoryID == nil {
		log.Error().Int64("user_id", userID).Msg("invalid expense data provided")
		return models.Expense{}, ErrInvalidDataProvided
	}

	return e.expenseRepository.CreateExpense(ctx, models.Expense{
		Description: payload.Description,
		Amount:      *payload.Amount,
		Date:        time.Now(),
		CategoryID:  *payload.CategoryID,
		UserID:      userID,
	})
}

// GetExpenses lists the user's expenses, optionally narrowed to the given
// categories.
func (e *expenseService) GetExpenses(ctx context.Context, userID int64, categoryIDs []int64, page store.Page) ([]models.Expense, error) {
	return e.expenseRepository.GetExpenses(ctx, store.ExpenseFilter{
		UserID:      userID,
		CategoryIDs: categoryIDs,
	}, page)
}

// GetExpense retrieves a single expense owned by the given user.
func (e *expenseService) GetExpense(ctx context.Context, id, userID int64) (models.Expense, error) {
	return e.expenseRepository.GetExpense(ctx, id, userID)
}

// UpdateExpense fully replaces the client-supplied fields of an owned
// expense. Every required field must be resupplied; a payload missing Amount
// or CategoryID is rejected rather than treated as a partial update. The
// stored date is preserved.
func (e *expenseService) UpdateExpense(ctx context.Context, id, userID int64, payload models.ExpenseUpsert) (models.Expense, error) {
	log := logger.FromContext(ctx)

	if payload.Amount == nil || payload.CategoryID == nil {
		log.Error().Int64("id", id).Int64("user_id", userID).Msg("invalid expense data provided")
		return models.Expense{}, ErrInvalidDataProvided
	}

	return e.expenseRepository.UpdateExpense(ctx, models.Expense{
		ID:          id,
		Description: payload.Description,
		Amount:      *payload.Amount,
		CategoryID:  *payload.CategoryID,
		UserID:      userID,
	})
}

// DeleteExpense permanently removes an owned expense.
func (e *expenseService) DeleteExpense(ctx context.Context, id, userID int64) error {
	return e.expenseRepository.DeleteExpense(ctx, id, userID)
}
