package models

import "time"

// Salary is a single income record owned by one user.
type Salary struct {
	ID          int64     `json:"id"`
	Description *string   `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	UserID      int64     `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Salary model.
func (s Salary) TableName() string {
	return "salaries"
}
