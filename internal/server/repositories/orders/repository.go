package orders

import (
	"context"

	"github.com/cookiecravings/api/internal/server/models"
)

type Repository interface {
	// CreateHeader inserts the order header and fills in ID and OrderDate.
	CreateHeader(ctx context.Context, order *models.Order) (*models.Order, error)

	// AddItem inserts one order line with its captured unit price.
	AddItem(ctx context.Context, item *models.OrderItem) (*models.OrderItem, error)

	// GetByID returns the denormalized order: header plus ordered line items
	// carrying the referenced catalog item names.
	GetByID(ctx context.Context, orderID int64) (*models.Order, error)

	// ListByUser returns the user's denormalized orders, most recent first.
	ListByUser(ctx context.Context, userID int64) ([]*models.Order, error)
}
