package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cookiecravings/api/internal/server/models"
	"github.com/cookiecravings/api/internal/server/repositories/repomanager"
)

type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{db: db, repomanager: m}
}

// List returns every catalog item with its current price.
func (s *CatalogService) List(ctx context.Context) ([]*models.CatalogItem, error) {
	items, err := s.repomanager.Catalog(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing catalog: %w", err)
	}
	return items, nil
}
