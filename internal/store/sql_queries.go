package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, hashed_password, is_active, created_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, username, email, hashed_password, is_active, created_at;`

	findUserByUsername = `SELECT id, username, email, hashed_password, is_active, created_at
    FROM users
    WHERE username = $1;`

	createCategory = `INSERT INTO categories (name, description)
    VALUES ($1, $2)
    RETURNING id, name, description;`

	countCategories = `SELECT COUNT(*) FROM categories;`

	seedCategory = `INSERT INTO categories (name, description) VALUES ($1, $2);`

	createExpense = `INSERT INTO expenses (description, amount, date, category_id, user_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id;`

	getExpense = `SELECT e.id, e.description, e.amount, e.date, e.category_id, e.user_id,
       c.id, c.name, c.description
    FROM expenses e
    LEFT JOIN categories c ON c.id = e.category_id
    WHERE e.id = $1 AND e.user_id = $2;`

	updateExpense = `UPDATE expenses
    SET description = $1, amount = $2, category_id = $3
    WHERE id = $4 AND user_id = $5;`

	deleteExpense = `DELETE FROM expenses WHERE id = $1 AND user_id = $2;`

	createSalary = `INSERT INTO salaries (description, amount, date, user_id)
    VALUES ($1, $2, $3, $4)
    RETURNING id, description, amount, date, user_id;`

	getSalary = `SELECT id, description, amount, date, user_id
    FROM salaries
    WHERE id = $1 AND user_id = $2;`

	updateSalary = `UPDATE salaries
    SET description = $1, amount = $2
    WHERE id = $3 AND user_id = $4;`

	deleteSalary = `DELETE FROM salaries WHERE id = $1 AND user_id = $2;`
)

var statementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Page bounds the result window of a listing query.
// Skip/Limit map directly onto SQL OFFSET/LIMIT.
type Page struct {
	Skip  uint64
	Limit uint64
}

// ExpenseFilter narrows an expense listing. UserID is always applied;
// CategoryIDs, when non-empty, restricts the result to those categories.
type ExpenseFilter struct {
	UserID      int64
	CategoryIDs []int64
}

// buildListExpensesQuery builds the ownership-filtered expense listing with
// the joined category columns, optional category narrowing, and pagination.
func buildListExpensesQuery(filter ExpenseFilter, page Page) (string, []any, error) {
	builder := statementBuilder.
		Select(
			"e.id", "e.description", "e.amount", "e.date", "e.category_id", "e.user_id",
			"c.id", "c.name", "c.description",
		).
		From("expenses e").
		LeftJoin("categories c ON c.id = e.category_id").
		Where(sq.Eq{"e.user_id": filter.UserID}).
		OrderBy("e.id").
		Offset(page.Skip).
		Limit(page.Limit)

	if len(filter.CategoryIDs) > 0 {
		builder = builder.Where(sq.Eq{"e.category_id": filter.CategoryIDs})
	}

	return builder.ToSql()
}

// buildListSalariesQuery builds the ownership-filtered salary listing with
// pagination.
func buildListSalariesQuery(userID int64, page Page) (string, []any, error) {
	return statementBuilder.
		Select("id", "description", "amount", "date", "user_id").
		From("salaries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		Offset(page.Skip).
		Limit(page.Limit).
		ToSql()
}

// buildListCategoriesQuery builds the unscoped category listing with
// pagination.
func buildListCategoriesQuery(page Page) (string, []any, error) {
	return statementBuilder.
		Select("id", "name", "description").
		From("categories").
		OrderBy("id").
		Offset(page.Skip).
		Limit(page.Limit).
		ToSql()
}
