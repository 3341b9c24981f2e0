package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cookiecravings/api/internal/common"
	"github.com/cookiecravings/api/internal/dbx"
	"github.com/cookiecravings/api/internal/server/models"
	"github.com/cookiecravings/api/internal/server/repositories/repomanager"
)

// OrderLine is one requested order line. Prices are never part of the
// request; they are resolved server-side from the catalog.
type OrderLine struct {
	ItemID         int64
	Quantity       int
	Customizations *string
}

type OrderService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewOrderService(db *sql.DB, m repomanager.RepositoryManager) *OrderService {
	return &OrderService{db: db, repomanager: m}
}

// Create prices the requested lines from the catalog, then persists the
// order header and every line inside one transaction, so a failure part-way
// can never leave a half-written order. Returns the committed order
// re-read in denormalized form.
func (s *OrderService) Create(ctx context.Context, userID int64, lines []OrderLine) (*models.Order, error) {

	if fieldErrs := validateOrderLines(lines); len(fieldErrs) > 0 {
		return nil, &common.ValidationError{Fields: fieldErrs}
	}

	catalogRepo := s.repomanager.Catalog(s.db)

	prices := make([]int64, len(lines))
	var total int64
	for i, line := range lines {
		item, err := catalogRepo.GetByID(ctx, line.ItemID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil, fmt.Errorf("catalog item %d: %w", line.ItemID, common.ErrNotFound)
			}
			return nil, fmt.Errorf("error resolving price for item %d: %w", line.ItemID, err)
		}
		prices[i] = item.PriceCents
		total += item.PriceCents * int64(line.Quantity)
	}

	var orderID int64

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Orders(tx)

		order, err := repo.CreateHeader(ctx, &models.Order{UserID: userID, TotalCents: total})
		if err != nil {
			return fmt.Errorf("error creating order: %w", err)
		}
		orderID = order.ID

		for i, line := range lines {
			_, err := repo.AddItem(ctx, &models.OrderItem{
				OrderID:        order.ID,
				ItemID:         line.ItemID,
				Quantity:       line.Quantity,
				Customizations: line.Customizations,
				UnitPriceCents: prices[i],
			})
			if err != nil {
				return fmt.Errorf("error adding order item: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	order, err := s.repomanager.Orders(s.db).GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("error reading back order: %w", err)
	}

	return order, nil
}

// ListMine returns the caller's orders, most recent first, each carrying
// its line items with resolved catalog names.
func (s *OrderService) ListMine(ctx context.Context, userID int64) ([]*models.Order, error) {
	list, err := s.repomanager.Orders(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}
	return list, nil
}

func validateOrderLines(lines []OrderLine) []common.FieldError {
	if len(lines) == 0 {
		return []common.FieldError{{Field: "items", Message: "At least one item is required"}}
	}

	var errs []common.FieldError
	for i, line := range lines {
		if line.ItemID <= 0 {
			errs = append(errs, common.FieldError{Field: "items", Message: fmt.Sprintf("Item %d: item_id is required", i)})
		}
		if line.Quantity <= 0 {
			errs = append(errs, common.FieldError{Field: "items", Message: fmt.Sprintf("Item %d: quantity must be a positive integer", i)})
		}
	}
	return errs
}
