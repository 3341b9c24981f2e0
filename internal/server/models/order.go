package models

import "time"

// Order is an order header plus its line items. TotalCents always equals the
// sum of UnitPriceCents*Quantity over Items; both are computed server-side.
// Orders are immutable once written.
type Order struct {
	ID         int64
	UserID     int64
	TotalCents int64
	OrderDate  time.Time
	Items      []OrderItem
}

// OrderItem is a single order line. UnitPriceCents is the catalog price
// captured at order time and never re-reads the catalog. Name is filled from
// the catalog on denormalized reads only.
type OrderItem struct {
	ID             int64
	OrderID        int64
	ItemID         int64
	Name           string
	Quantity       int
	Customizations *string
	UnitPriceCents int64
}
