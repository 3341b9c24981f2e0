package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cookiecravings/api/internal/common"
	"github.com/cookiecravings/api/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(username,\s*email,\s*password_hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), now)
	mock.ExpectQuery(q).
		WithArgs("alice", "alice@example.com", "$2a$12$hash").
		WillReturnRows(rows)

	u := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "$2a$12$hash"}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 42 || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_UniqueViolationMapsToField(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{"email constraint", "users_email_key", common.ErrDuplicateEmail},
		{"username constraint", "users_username_key", common.ErrDuplicateUsername},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			mock.ExpectQuery(`INSERT\s+INTO\s+users`).
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: tc.constraint})

			_, err := repo.Create(context.Background(), &models.User{Username: "alice", Email: "a@b.com", PasswordHash: "h"})
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Username: "alice", Email: "a@b.com", PasswordHash: "h"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*username,\s*email,\s*password_hash,\s*failed_login_count,\s*last_failed_login_at,\s*created_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`

	failedAt := time.Now().Add(-time.Minute)
	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "failed_login_count", "last_failed_login_at", "created_at"}).
		AddRow(int64(7), "alice", "alice@example.com", "$2a$12$hash", 2, failedAt, time.Now())
	mock.ExpectQuery(q).
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != 7 || got.FailedLoginCount != 2 || got.LastFailedLoginAt == nil {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*username,\s*email`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestFindConflict_MatchesEitherField(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*username,\s*email\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s+OR\s+username\s*=\s*\$2\s+LIMIT\s+1\s*$`

	rows := sqlmock.NewRows([]string{"id", "username", "email"}).
		AddRow(int64(3), "alice", "other@example.com")
	mock.ExpectQuery(q).
		WithArgs("alice@example.com", "alice").
		WillReturnRows(rows)

	got, err := repo.FindConflict(context.Background(), "alice@example.com", "alice")
	if err != nil {
		t.Fatalf("FindConflict error: %v", err)
	}
	if got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestFindConflict_NoConflict(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*username,\s*email\s+FROM\s+users`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindConflict(context.Background(), "fresh@example.com", "fresh")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestRegisterFailedLogin_ReturnsNewCount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+failed_login_count\s*=\s*failed_login_count\s*\+\s*1,\s*last_failed_login_at\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1\s+RETURNING\s+failed_login_count\s*$`

	at := time.Now()
	rows := sqlmock.NewRows([]string{"failed_login_count"}).AddRow(5)
	mock.ExpectQuery(q).
		WithArgs(int64(7), at).
		WillReturnRows(rows)

	count, err := repo.RegisterFailedLogin(context.Background(), 7, at)
	if err != nil {
		t.Fatalf("RegisterFailedLogin error: %v", err)
	}
	if count != 5 {
		t.Fatalf("want count 5, got %d", count)
	}
}

func TestResetFailedLogins_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+failed_login_count\s*=\s*0,\s*last_failed_login_at\s*=\s*NULL\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ResetFailedLogins(context.Background(), 7); err != nil {
		t.Fatalf("ResetFailedLogins error: %v", err)
	}
}
