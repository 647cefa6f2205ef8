// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/expense-tracker/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CurrentUserCtxKey is the key used to store the authenticated user in the
// request context. Used together with GetUserFromContext for type-safe
// retrieval of the resolved account from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.CurrentUserCtxKey, user)
var CurrentUserCtxKey = contextKey("currentUser")

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns the resolved [models.User] and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	user, ok := utils.GetUserFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(CurrentUserCtxKey).(models.User)
	return user, ok
}
