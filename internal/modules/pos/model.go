package pos

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod names how a sale was paid. The card method earns a
// 10% discount; everything else pays full price.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// cardDiscountMultiplier is applied to the cart total for card payments.
const cardDiscountMultiplier = 0.9

// CartItem is a cart entry joined live against the catalog.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// AddItemRequest is the payload for adding to or updating the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest is the payload for committing a sale.
type CheckoutRequest struct {
	PaymentMethod  string   `json:"payment_method"`
	AmountReceived *float64 `json:"amount_received,omitempty"`
}

// Receipt summarizes a committed sale. Line items are not retained once the
// aggregate record is in the sales log.
type Receipt struct {
	Reference uuid.UUID `json:"reference"`
	Total     float64   `json:"total"`
	Change    float64   `json:"change"`
	At        time.Time `json:"at"`
}
