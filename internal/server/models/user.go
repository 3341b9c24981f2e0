// Package models defines the persistent entities of the storefront.
package models

import "time"

// User is an account row. Email is stored lowercase; FailedLoginCount and
// LastFailedLoginAt back the login lockout policy and are mutated only by
// the login workflow.
type User struct {
	ID                int64
	Username          string
	Email             string
	PasswordHash      string
	FailedLoginCount  int
	LastFailedLoginAt *time.Time
	CreatedAt         time.Time
}
