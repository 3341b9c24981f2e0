package models

// CatalogItem is a sellable item. PriceCents is the current price; orders
// capture their own per-line snapshot at order time.
type CatalogItem struct {
	ID          int64
	Name        string
	Description string
	PriceCents  int64
}
