// Package utils provides general-purpose helper utilities used across the
// keepno client: type-safe context keys, request id generation and the
// shared resty HTTP client.
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

// RequestIDCtxKey is the key used to store the outbound request id in the
// context. The HTTP adapter sends it as the X-Request-ID header.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithRequestID(ctx, "0195d7a4-...")
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext retrieves the request id from the context.
//
// Returns the id and an ok flag:
//   - ok == true : value is found, is a string and is non-empty
//   - ok == false: value is missing or has an unexpected type
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
