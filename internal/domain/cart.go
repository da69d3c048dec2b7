package domain

import "time"

// Cart is per-user staging state. It is advisory only: the stock
// ledger is never reserved from here, and order creation re-validates
// every line inside its own transaction.
type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

// CartLine is the validation verdict for a single cart item against
// the current ledger snapshot.
type CartLine struct {
	Item       CartItem `json:"item"`
	PriceCents int64    `json:"price_cents"`
	Available  bool     `json:"available"`
	Reason     string   `json:"reason,omitempty"`
}

// CartValidation summarises a pre-checkout check. OK means every line
// was available at the moment of the snapshot; it is not a hold.
type CartValidation struct {
	Lines      []CartLine `json:"lines"`
	TotalCents int64      `json:"total_cents"`
	OK         bool       `json:"ok"`
}
