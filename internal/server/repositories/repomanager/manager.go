package repomanager

import (
	"context"
	"database/sql"

	"github.com/cookiecravings/api/internal/dbx"
	"github.com/cookiecravings/api/internal/server/repositories/catalog"
	"github.com/cookiecravings/api/internal/server/repositories/orders"
	"github.com/cookiecravings/api/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same
// repository code runs against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Catalog(db dbx.DBTX) catalog.Repository
	Orders(db dbx.DBTX) orders.Repository
}
