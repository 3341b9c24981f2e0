package catalog

import (
	"context"

	"github.com/cookiecravings/api/internal/server/models"
)

// Repository is the catalog price lookup consumed by the order workflow and
// the public catalog listing.
type Repository interface {
	// GetByID returns the item or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.CatalogItem, error)
	List(ctx context.Context) ([]*models.CatalogItem, error)
}
