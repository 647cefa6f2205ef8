package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/models"
)

// salaryRepository is the SQL-backed implementation of [SalaryRepository].
// Same ownership rules as the expense repository, minus the category join.
type salaryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSalaryRepository constructs a [SalaryRepository] backed by the provided
// database handle and logger.
func NewSalaryRepository(db *DB, logger *logger.Logger) SalaryRepository {
	logger.Debug().Msg("creating salary repository")
	return &salaryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSalary inserts a new salary row and returns the persisted row.
// UserID and Date must already be set by the caller.
func (r *salaryRepository) CreateSalary(ctx context.Context, salary models.Salary) (models.Salary, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSalary,
		salary.Description, salary.Amount, salary.Date, salary.UserID)

	var created models.Salary
	if err := row.Scan(&created.ID, &created.Description, &created.Amount,
		&created.Date, &created.UserID); err != nil {
		log.Err(err).Str("func", "*salaryRepository.CreateSalary").
			Int64("user_id", salary.UserID).Msg("error creating salary")
		return models.Salary{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetSalaries returns the caller's salary rows in insertion order, sliced by
// the given page.
func (r *salaryRepository) GetSalaries(ctx context.Context, userID int64, page Page) ([]models.Salary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSalariesQuery(userID, page)
	if err != nil {
		log.Err(err).Str("func", "*salaryRepository.GetSalaries").
			Int64("user_id", userID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*salaryRepository.GetSalaries").
			Int64("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	salaries := make([]models.Salary, 0, page.Limit)

	for rows.Next() {
		var salary models.Salary
		if scanErr := rows.Scan(&salary.ID, &salary.Description, &salary.Amount,
			&salary.Date, &salary.UserID); scanErr != nil {
			log.Err(scanErr).Str("func", "*salaryRepository.GetSalaries").
				Int64("user_id", userID).Msg("failed to scan salary row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		salaries = append(salaries, salary)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*salaryRepository.GetSalaries").
			Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return salaries, nil
}

// GetSalary retrieves a single salary owned by the given user.
// Returns ErrSalaryNotFound when no such row is visible to the caller.
func (r *salaryRepository) GetSalary(ctx context.Context, id, userID int64) (models.Salary, error) {
	log := logger.FromContext(ctx)

	var salary models.Salary
	row := r.db.QueryRowContext(ctx, getSalary, id, userID)

	if err := row.Scan(&salary.ID, &salary.Description, &salary.Amount,
		&salary.Date, &salary.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Salary{}, ErrSalaryNotFound
		}

		log.Err(err).Str("func", "*salaryRepository.GetSalary").
			Int64("id", id).Int64("user_id", userID).Msg("failed to scan salary row")
		return models.Salary{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return salary, nil
}

// UpdateSalary overwrites every client-supplied field of an owned row
// (full replacement; the stored date is preserved) and returns the updated
// row. Returns ErrSalaryNotFound when no owned row matches.
func (r *salaryRepository) UpdateSalary(ctx context.Context, salary models.Salary) (models.Salary, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateSalary,
		salary.Description, salary.Amount, salary.ID, salary.UserID)
	if err != nil {
		log.Err(err).Str("func", "*salaryRepository.UpdateSalary").
			Int64("id", salary.ID).Int64("user_id", salary.UserID).Msg("error updating salary")
		return models.Salary{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Salary{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Salary{}, ErrSalaryNotFound
	}

	return r.GetSalary(ctx, salary.ID, salary.UserID)
}

// DeleteSalary permanently removes an owned row.
// Returns ErrSalaryNotFound when no owned row matches.
func (r *salaryRepository) DeleteSalary(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteSalary, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*salaryRepository.DeleteSalary").
			Int64("id", id).Int64("user_id", userID).Msg("error deleting salary")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSalaryNotFound
	}

	return nil
}
