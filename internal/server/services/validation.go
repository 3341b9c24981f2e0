// Package services implements the registration, login, catalog, and order
// workflows on top of the repository layer.
package services

import (
	"regexp"
	"strings"

	"github.com/cookiecravings/api/internal/common"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// passwordSpecials is the accepted special-character set for passwords.
const passwordSpecials = "@$!%*?&"

// NormalizeEmail canonicalizes an email for storage and lookups:
// surrounding whitespace stripped, lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateRegistration runs every field validator and returns the full list
// of problems; it never stops at the first failure.
func validateRegistration(username, email, password string) []common.FieldError {
	var errs []common.FieldError

	switch {
	case username == "":
		errs = append(errs, common.FieldError{Field: "username", Message: "Username is required"})
	case len(username) < 3 || len(username) > 20:
		errs = append(errs, common.FieldError{Field: "username", Message: "Username must be between 3 and 20 characters"})
	case !usernameRe.MatchString(username):
		errs = append(errs, common.FieldError{Field: "username", Message: "Username can only contain letters, numbers, and underscores"})
	}

	switch {
	case email == "":
		errs = append(errs, common.FieldError{Field: "email", Message: "Email is required"})
	case !emailRe.MatchString(email):
		errs = append(errs, common.FieldError{Field: "email", Message: "Please include a valid email"})
	}

	switch {
	case password == "":
		errs = append(errs, common.FieldError{Field: "password", Message: "Password is required"})
	case len(password) < 8:
		errs = append(errs, common.FieldError{Field: "password", Message: "Password must be at least 8 characters"})
	case !passwordComplexEnough(password):
		errs = append(errs, common.FieldError{Field: "password", Message: "Password must contain at least one uppercase letter, one lowercase letter, one number and one special character"})
	}

	return errs
}

// validateLogin checks presence/shape of the login inputs.
func validateLogin(email, password string) []common.FieldError {
	var errs []common.FieldError

	if !emailRe.MatchString(email) {
		errs = append(errs, common.FieldError{Field: "email", Message: "Please include a valid email"})
	}
	if password == "" {
		errs = append(errs, common.FieldError{Field: "password", Message: "Password is required"})
	}

	return errs
}

func passwordComplexEnough(password string) bool {
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return upper && lower && digit && special
}
