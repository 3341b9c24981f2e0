package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cookiecravings/api/internal/common"
	"github.com/cookiecravings/api/internal/dbx"
	"github.com/cookiecravings/api/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.CatalogItem, error) {
	query :=
		`SELECT id, name, description, price_cents
		 FROM catalog_items
		 WHERE id = $1
		 `

	item := &models.CatalogItem{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.PriceCents)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %v", err)
	}

	return item, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.CatalogItem, error) {
	query :=
		`SELECT id, name, description, price_cents
		 FROM catalog_items
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %v", err)
	}
	defer rows.Close()

	var items []*models.CatalogItem
	for rows.Next() {
		item := &models.CatalogItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.PriceCents); err != nil {
			return nil, fmt.Errorf("db error: %v", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %v", err)
	}

	return items, nil
}
