package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/models"
)

// expenseRepository is the SQL-backed implementation of [ExpenseRepository].
//
// Every query carries the owner's user id in its WHERE clause, so a row that
// exists but belongs to another user is indistinguishable from a row that
// does not exist. Reads join the categories table and embed the category row.
type expenseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewExpenseRepository constructs an [ExpenseRepository] backed by the
// provided database handle and logger.
func NewExpenseRepository(db *DB, logger *logger.Logger) ExpenseRepository {
	logger.Debug().Msg("creating expense repository")
	return &expenseRepository{
		db:     db,
		logger: logger,
	}
}

// CreateExpense inserts a new expense row and returns it with the joined
// category populated. UserID and Date must already be set by the caller.
func (r *expenseRepository) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createExpense,
		expense.Description, expense.Amount, expense.Date, expense.CategoryID, expense.UserID)

	var id int64
	if err := row.Scan(&id); err != nil {
		log.Err(err).Str("func", "*expenseRepository.CreateExpense").
			Int64("user_id", expense.UserID).Msg("error creating expense")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.GetExpense(ctx, id, expense.UserID)
}

// GetExpenses returns the caller's expense rows matching the filter, in
// insertion order, sliced by the given page.
func (r *expenseRepository) GetExpenses(ctx context.Context, filter ExpenseFilter, page Page) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListExpensesQuery(filter, page)
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.GetExpenses").
			Int64("user_id", filter.UserID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.GetExpenses").
			Int64("user_id", filter.UserID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0, page.Limit)

	for rows.Next() {
		expense, scanErr := scanExpense(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*expenseRepository.GetExpenses").
				Int64("user_id", filter.UserID).Msg("failed to scan expense row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		expenses = append(expenses, expense)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*expenseRepository.GetExpenses").
			Int64("user_id", filter.UserID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return expenses, nil
}

// GetExpense retrieves a single expense owned by the given user.
// Returns ErrExpenseNotFound when no such row is visible to the caller.
func (r *expenseRepository) GetExpense(ctx context.Context, id, userID int64) (models.Expense, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getExpense, id, userID)

	expense, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Expense{}, ErrExpenseNotFound
		}

		log.Err(err).Str("func", "*expenseRepository.GetExpense").
			Int64("id", id).Int64("user_id", userID).Msg("failed to scan expense row")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return expense, nil
}

// UpdateExpense overwrites every client-supplied field of an owned row
// (full replacement; the stored date is preserved) and returns the updated
// row. Returns ErrExpenseNotFound when no owned row matches.
func (r *expenseRepository) UpdateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateExpense,
		expense.Description, expense.Amount, expense.CategoryID, expense.ID, expense.UserID)
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.UpdateExpense").
			Int64("id", expense.ID).Int64("user_id", expense.UserID).Msg("error updating expense")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Expense{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Expense{}, ErrExpenseNotFound
	}

	return r.GetExpense(ctx, expense.ID, expense.UserID)
}

// DeleteExpense permanently removes an owned row.
// Returns ErrExpenseNotFound when no owned row matches.
func (r *expenseRepository) DeleteExpense(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteExpense, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.DeleteExpense").
			Int64("id", id).Int64("user_id", userID).Msg("error deleting expense")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanExpense scans one expense row with its left-joined category columns.
// The category is embedded only when the join matched.
func scanExpense(row rowScanner) (models.Expense, error) {
	var expense models.Expense
	var catID sql.NullInt64
	var catName sql.NullString
	var catDescription *string

	if err := row.Scan(
		&expense.ID,
		&expense.Description,
		&expense.Amount,
		&expense.Date,
		&expense.CategoryID,
		&expense.UserID,
		&catID,
		&catName,
		&catDescription,
	); err != nil {
		return models.Expense{}, err
	}

	if catID.Valid {
		expense.Category = &models.Category{
			ID:          catID.Int64,
			Name:        catName.String,
			Description: catDescription,
		}
	}

	return expense, nil
}
