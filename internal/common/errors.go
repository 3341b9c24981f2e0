// Package common defines shared sentinel and field-attributed errors used
// across the server layers. Callers should use errors.Is / errors.As to
// match these values.
package common

import (
	"errors"
	"strings"
)

var (
	// Repository-level errors.
	ErrNotFound          = errors.New("not found")
	ErrDuplicateEmail    = errors.New("email already taken")
	ErrDuplicateUsername = errors.New("username already taken")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// FieldError attributes a single problem to a named request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates per-field input errors. All field validators
// run before the first error is reported, so Fields carries every problem
// found in the request, not just the first one.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ConflictError reports a uniqueness collision attributed to the specific
// conflicting field (email or username).
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return "user with this " + e.Field + " already exists"
}

// Message renders the client-facing wording for the conflict.
func (e *ConflictError) Message() string {
	return "User with this " + e.Field + " already exists"
}

// AuthError is a deliberately vague credentials failure. The field names the
// input the client should re-check; the message never reveals whether the
// account exists.
type AuthError struct {
	Field   string
	Message string
}

func (e *AuthError) Error() string {
	return "auth failed (" + e.Field + "): " + e.Message
}

// LockedError rejects authentication outright while the lockout window is
// active, regardless of password correctness.
type LockedError struct {
	Message string
}

func (e *LockedError) Error() string {
	return e.Message
}
