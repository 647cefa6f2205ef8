package models

// RegisterRequest is the JSON payload accepted by the registration endpoint.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ExpenseUpsert is the payload for expense creation and full-replacement
// update. Amount and CategoryID are pointers so that an omitted field can be
// told apart from a zero value: the contract requires every field to be
// resupplied on update.
type ExpenseUpsert struct {
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	CategoryID  *int64   `json:"category_id"`
}

// SalaryUpsert is the payload for salary creation and full-replacement update.
type SalaryUpsert struct {
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
}

// CategoryUpsert is the payload for category creation.
type CategoryUpsert struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
