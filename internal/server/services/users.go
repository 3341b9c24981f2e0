package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cookiecravings/api/internal/common"
	"github.com/cookiecravings/api/internal/server/auth"
	"github.com/cookiecravings/api/internal/server/config"
	"github.com/cookiecravings/api/internal/server/models"
	"github.com/cookiecravings/api/internal/server/repositories/repomanager"
)

// timeNow is a seam for lockout tests.
var timeNow = time.Now

// AuthResult is returned by both registration and login: a signed session
// token plus the account it identifies.
type AuthResult struct {
	Token string
	User  *models.User
}

type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register validates the input (collecting every field error before touching
// the store), checks email/username uniqueness, creates the account, and
// issues a session token for it.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {

	username = strings.TrimSpace(username)
	email = NormalizeEmail(email)

	if fieldErrs := validateRegistration(username, email, password); len(fieldErrs) > 0 {
		return nil, &common.ValidationError{Fields: fieldErrs}
	}

	repo := s.repomanager.Users(s.db)

	existing, err := repo.FindConflict(ctx, email, username)
	if err == nil {
		// email is checked first, matching the lookup's attribution order
		field := "username"
		if strings.EqualFold(existing.Email, email) {
			field = "email"
		}
		return nil, &common.ConflictError{Field: field}
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("error checking existing account: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := repo.Create(ctx, &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		// the lookup-then-insert race resolves through the store's unique
		// constraints, reported as the same field-attributed conflict
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, &common.ConflictError{Field: "email"}
		}
		if errors.Is(err, common.ErrDuplicateUsername) {
			return nil, &common.ConflictError{Field: "username"}
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}

// Login authenticates by email and password. The lockout policy is consulted
// before the password check; failed checks increment the account's counter
// durably before the error is returned, and successful checks reset it.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {

	email = NormalizeEmail(email)

	if fieldErrs := validateLogin(email, password); len(fieldErrs) > 0 {
		return nil, &common.ValidationError{Fields: fieldErrs}
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// same wording as a wrong password, to avoid account enumeration
			return nil, &common.AuthError{Field: "email", Message: "Invalid credentials"}
		}
		return nil, fmt.Errorf("error looking up account: %w", err)
	}

	now := timeNow()

	if auth.Locked(user.FailedLoginCount, user.LastFailedLoginAt, now) {
		return nil, &common.LockedError{Message: auth.LockedMessage}
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		count, err := repo.RegisterFailedLogin(ctx, user.ID, now)
		if err != nil {
			// the lockout guarantee depends on the increment being durable,
			// so a failed write surfaces instead of the credentials error
			return nil, fmt.Errorf("error recording failed login: %w", err)
		}
		if count >= auth.MaxFailedLogins {
			return nil, &common.AuthError{Field: "email", Message: auth.JustLockedMessage}
		}
		return nil, &common.AuthError{Field: "password", Message: "Invalid credentials"}
	}

	if err := repo.ResetFailedLogins(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("error resetting failed logins: %w", err)
	}
	user.FailedLoginCount = 0
	user.LastFailedLoginAt = nil

	token, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}

func (s *UserService) issueToken(user *models.User) (string, error) {
	return auth.GenerateToken(user.ID, user.Username, user.Email, s.jwtSecret, s.tokenValidityDuration)
}
