package domain

import "time"

type ProductStatus string

const (
	ProductStatusActive     ProductStatus = "active"
	ProductStatusOutOfStock ProductStatus = "out_of_stock"
)

// StockStatusFor returns the status implied by a stock quantity.
// The active/out_of_stock flip is driven by the zero boundary only;
// no other transition touches this field.
func StockStatusFor(quantity int) ProductStatus {
	if quantity <= 0 {
		return ProductStatusOutOfStock
	}
	return ProductStatusActive
}

// Product is a craft item with a finite stock ledger.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	PriceCents  int64         `json:"price_cents"`
	Quantity    int           `json:"quantity"`
	Status      ProductStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type CreateProductInput struct {
	Name        string
	Description string
	PriceCents  int64
	Quantity    int
}
