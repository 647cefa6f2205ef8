package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/models"
)

// categoryRepository is the SQL-backed implementation of [CategoryRepository].
// Categories are global reference data: no ownership filter is applied.
type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// provided database handle and logger.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCategory inserts a new category and returns the persisted row.
// No uniqueness is enforced on the name.
func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCategory, category.Name, category.Description)

	var created models.Category
	if err := row.Scan(&created.ID, &created.Name, &created.Description); err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("error creating category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetCategories returns the shared category list in insertion order, sliced
// by the given page.
func (r *categoryRepository) GetCategories(ctx context.Context, page Page) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCategoriesQuery(page)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.GetCategories").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.GetCategories").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, page.Limit)

	for rows.Next() {
		var category models.Category
		if scanErr := rows.Scan(&category.ID, &category.Name, &category.Description); scanErr != nil {
			log.Err(scanErr).Str("func", "*categoryRepository.GetCategories").Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		categories = append(categories, category)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*categoryRepository.GetCategories").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return categories, nil
}

// SeedDefaultCategories inserts the fixed default category set if the table
// is empty. The count check and the inserts run inside one transaction.
//
// The check-then-insert is not safe under concurrent first-time startup of
// multiple instances; deployment is single-instance, so this is an accepted
// limitation.
//
// Returns the number of rows inserted: len(defaultCategories) on first
// startup, zero on every later one.
func (r *categoryRepository) SeedDefaultCategories(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.SeedDefaultCategories").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var existing int
	if err = tx.QueryRowContext(ctx, countCategories).Scan(&existing); err != nil {
		log.Err(err).Str("func", "*categoryRepository.SeedDefaultCategories").Msg("failed to count categories")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if existing > 0 {
		return 0, nil
	}

	for _, category := range defaultCategories {
		if _, err = tx.ExecContext(ctx, seedCategory, category.Name, category.Description); err != nil {
			log.Err(err).Str("func", "*categoryRepository.SeedDefaultCategories").
				Str("name", category.Name).Msg("failed to insert seed category")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*categoryRepository.SeedDefaultCategories").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().Int("count", len(defaultCategories)).Msg("seeded default categories")

	return len(defaultCategories), nil
}
