package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cookiecravings/api/internal/common"
	"github.com/cookiecravings/api/internal/dbx"
	"github.com/cookiecravings/api/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const pgUniqueViolation = "23505"

// mapUniqueViolation converts a unique-constraint error on insert into the
// field-specific duplicate sentinel, so a lookup-then-insert race still
// surfaces as the same "already exists" error the conflict probe produces.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return nil
	}
	if strings.Contains(pgErr.ConstraintName, "email") {
		return common.ErrDuplicateEmail
	}
	return common.ErrDuplicateUsername
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (username, email, password_hash)
         VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("db error: %v", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, username, email, password_hash, failed_login_count, last_failed_login_at, created_at
		 FROM users
		 WHERE email = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.FailedLoginCount, &user.LastFailedLoginAt, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %v", err)
	}

	return user, nil
}

func (r *PostgresRepository) FindConflict(ctx context.Context, email, username string) (*models.User, error) {
	query :=
		`SELECT id, username, email
		 FROM users
		 WHERE email = $1 OR username = $2
		 LIMIT 1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email, username).Scan(
		&user.ID, &user.Username, &user.Email)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %v", err)
	}

	return user, nil
}

func (r *PostgresRepository) RegisterFailedLogin(ctx context.Context, userID int64, at time.Time) (int, error) {
	query :=
		`UPDATE users
		 SET failed_login_count = failed_login_count + 1, last_failed_login_at = $2
		 WHERE id = $1
		 RETURNING failed_login_count
		 `

	var count int
	err := r.db.QueryRowContext(ctx, query, userID, at).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrNotFound
		}
		return 0, fmt.Errorf("db error: %v", err)
	}

	return count, nil
}

func (r *PostgresRepository) ResetFailedLogins(ctx context.Context, userID int64) error {
	query :=
		`UPDATE users
		 SET failed_login_count = 0, last_failed_login_at = NULL
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %v", err)
	}

	return nil
}
