package models

import "time"

// Expense is a single spending record owned by one user and classified by
// one category. Ownership (UserID) is always assigned server-side from the
// authenticated caller, never taken from the client payload.
type Expense struct {
	ID          int64     `json:"id"`
	Description *string   `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	CategoryID  int64     `json:"category_id"`
	UserID      int64     `json:"user_id"`

	// Category is the joined category row, populated on reads.
	Category *Category `json:"category,omitempty"`
}

// TableName returns the name of the database table
// associated with the Expense model.
func (e Expense) TableName() string {
	return "expenses"
}
