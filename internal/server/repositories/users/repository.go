package users

import (
	"context"
	"time"

	"github.com/cookiecravings/api/internal/server/models"
)

type Repository interface {
	// Create inserts a new account. A unique-constraint collision is mapped
	// to common.ErrDuplicateEmail / common.ErrDuplicateUsername.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail looks an account up by its (lowercase) email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// FindConflict returns an existing account matching the email or the
	// username, or common.ErrNotFound when both are free.
	FindConflict(ctx context.Context, email, username string) (*models.User, error)

	// RegisterFailedLogin atomically increments the failed-login counter and
	// stamps the failure time, returning the new counter value.
	RegisterFailedLogin(ctx context.Context, userID int64, at time.Time) (int, error)

	// ResetFailedLogins zeroes the counter and clears the failure timestamp.
	ResetFailedLogins(ctx context.Context, userID int64) error
}
