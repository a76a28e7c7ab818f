// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
)

// Error kinds exposed in the "type" field of the JSON error envelope.
// Classification is an explicit tag on the error value, never derived from
// runtime type names.
const (
	// KindUnhandled labels every error the application did not construct
	// itself: body parse failures, runtime errors, anything opaque.
	KindUnhandled = "UnhandledError"

	// KindAuth labels bearer-token verification failures.
	KindAuth = "AuthError"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Error is an application error carrying its envelope classification and
// HTTP status code. Handlers return *Error when they want to control the
// "type" and "statusCode" fields of the envelope; any other error value is
// collapsed to [KindUnhandled] with status 500.
type Error struct {
	// Kind is the classification label written to the envelope's "type".
	Kind string

	// Status is the HTTP status code of the response. Zero means
	// unspecified and resolves to 500.
	Status int

	// Message is the client-visible description.
	Message string

	// Err is the wrapped cause, if any. Never exposed to clients.
	Err error
}

// NewError constructs an application error with an explicit kind and status.
func NewError(kind string, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}
