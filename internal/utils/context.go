// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, password
// hashing, HTTP response writing, and JWT token generation and validation.
package utils

import (
	"context"
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

// UserIDCtxKey is the key under which the auth middleware stores the
// authenticated account ID in the request context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// UserEmailCtxKey is the key under which the auth middleware stores the
// authenticated account email in the request context.
var UserEmailCtxKey = contextKey("userEmail")

// GetUserIDFromContext retrieves the authenticated account ID from the context.
//
// Returns the ID and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetUserEmailFromContext retrieves the authenticated account email from the
// context. The ok flag follows the same convention as GetUserIDFromContext.
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailCtxKey).(string)
	return email, ok
}
