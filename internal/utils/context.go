// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, and
// HTTP response writing.
package utils

import (
	"context"

	"github.com/MKhiriev/go-api-gate/models"
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

// PrincipalCtxKey is the key used to store the authenticated principal in
// the request context. Used together with GetPrincipalFromContext for
// type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.PrincipalCtxKey, principal)
var PrincipalCtxKey = contextKey("principal")

// ParsedBodyCtxKey is the key used to store the decoded request body in the
// request context. The value is whatever the body-parsing middleware
// produced: a map/slice tree for JSON bodies, or a map[string]any for
// extended url-encoded forms.
var ParsedBodyCtxKey = contextKey("parsedBody")

// GetPrincipalFromContext retrieves the authenticated principal from the
// context.
//
// Returns the principal and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return principal, ok
}

// GetParsedBodyFromContext retrieves the decoded request body stored by the
// body-parsing middleware, if any.
func GetParsedBodyFromContext(ctx context.Context) (any, bool) {
	body := ctx.Value(ParsedBodyCtxKey)
	return body, body != nil
}
