// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, api key hashing,
// HTTP response writing, HTTP client initialization, trace id generation
// and other common operations.
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

// ThemeIDCtxKey is the key used to store the theme identifier taken from the
// request URL in the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ThemeIDCtxKey, int64(42))
var ThemeIDCtxKey = contextKey("themeID")

// GetThemeIDFromContext retrieves the theme identifier from the context.
//
// Returns the theme ID of type int64 and an ok flag:
//   - ok == true : value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetThemeIDFromContext(ctx context.Context) (int64, bool) {
	themeID, ok := ctx.Value(ThemeIDCtxKey).(int64)
	return themeID, ok
}
