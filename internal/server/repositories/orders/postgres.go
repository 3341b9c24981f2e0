package orders

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

func (r *PostgresRepository) CreateHeader(ctx context.Context, order *models.Order) (*models.Order, error) {

	query :=
		`INSERT INTO orders (user_id, total_cents)
		 VALUES ($1, $2)
		 RETURNING id, order_date
		 `

	err := r.db.QueryRowContext(ctx, query,
		order.UserID, order.TotalCents).Scan(&order.ID, &order.OrderDate)

	if err != nil {
		return nil, fmt.Errorf("db error: %v", err)
	}

	return order, nil
}

func (r *PostgresRepository) AddItem(ctx context.Context, item *models.OrderItem) (*models.OrderItem, error) {

	query :=
		`INSERT INTO order_items (order_id, item_id, quantity, customizations, unit_price_cents)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		item.OrderID, item.ItemID, item.Quantity, item.Customizations, item.UnitPriceCents).Scan(&item.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %v", err)
	}

	return item, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, orderID int64) (*models.Order, error) {
	query :=
		`SELECT id, user_id, total_cents, order_date
		 FROM orders
		 WHERE id = $1
		 `

	order := &models.Order{}
	err := r.db.QueryRowContext(ctx, query, orderID).Scan(
		&order.ID, &order.UserID, &order.TotalCents, &order.OrderDate)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %v", err)
	}

	items, err := r.itemsForOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Order, error) {
	query :=
		`SELECT id, user_id, total_cents, order_date
		 FROM orders
		 WHERE user_id = $1
		 ORDER BY order_date DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %v", err)
	}
	defer rows.Close()

	var result []*models.Order
	for rows.Next() {
		order := &models.Order{}
		if err := rows.Scan(&order.ID, &order.UserID, &order.TotalCents, &order.OrderDate); err != nil {
			return nil, fmt.Errorf("db error: %v", err)
		}
		result = append(result, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %v", err)
	}

	for _, order := range result {
		items, err := r.itemsForOrder(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}

	return result, nil
}

// itemsForOrder loads a single order's lines joined with the catalog names,
// in insertion order.
func (r *PostgresRepository) itemsForOrder(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	query :=
		`SELECT oi.id, oi.order_id, oi.item_id, ci.name, oi.quantity, oi.customizations, oi.unit_price_cents
		 FROM order_items oi
		 JOIN catalog_items ci ON ci.id = oi.item_id
		 WHERE oi.order_id = $1
		 ORDER BY oi.id
		 `

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("db error: %v", err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		item := models.OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ItemID, &item.Name,
			&item.Quantity, &item.Customizations, &item.UnitPriceCents); err != nil {
			return nil, fmt.Errorf("db error: %v", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %v", err)
	}

	return items, nil
}
