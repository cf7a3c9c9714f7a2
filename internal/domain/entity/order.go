package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// DefaultDiscountRate is the flat rate applied whenever a discount code is present.
const DefaultDiscountRate = 0.10

// LineItem is a (SKU, quantity) pair. The SKU is a snapshot taken when the
// order was placed so later catalog edits do not rewrite history.
type LineItem struct {
	SKU      SKU `json:"sku"`
	Quantity int `json:"quantity"`
}

// Subtotal is the packet price times quantity.
func (li LineItem) Subtotal() float64 {
	return li.SKU.Price * float64(li.Quantity)
}

// LineItems is an ordered list of line items.
type LineItems []LineItem

// Total sums price × quantity over all items.
func (items LineItems) Total() float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}

	return total
}

// RoundAmount rounds half up to the nearest whole currency unit.
func RoundAmount(v float64) float64 {
	return math.Floor(v + 0.5)
}

// DiscountFor returns the discount granted on total at the given rate.
func DiscountFor(total, rate float64) float64 {
	return RoundAmount(total * rate)
}

// Order is a sale placed for a shop.
type Order struct {
	ID             uuid.UUID `json:"id"`
	ShopID         uuid.UUID `json:"shop_id"`
	Items          LineItems `json:"order_items"`
	TotalAmount    float64   `json:"total_amount"`
	DiscountCode   string    `json:"discount_code,omitempty"`
	DiscountAmount float64   `json:"discount_amount"`
	FinalAmount    float64   `json:"final_amount"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewOrder computes totals for items. An empty discountCode means no discount.
func NewOrder(shopID uuid.UUID, items LineItems, discountCode string, rate float64, now time.Time) *Order {
	order := &Order{
		ID:          uuid.New(),
		ShopID:      shopID,
		Items:       items,
		TotalAmount: items.Total(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	order.FinalAmount = order.TotalAmount
	if discountCode != "" {
		order.ApplyDiscount(discountCode, rate)
	}

	return order
}

// ApplyDiscount records the code and recomputes discount and final amounts.
// The code is not checked against any discount table.
func (o *Order) ApplyDiscount(code string, rate float64) {
	o.DiscountCode = code
	o.DiscountAmount = DiscountFor(o.TotalAmount, rate)
	o.FinalAmount = o.TotalAmount - o.DiscountAmount
}

// ReturnOrder records goods sent back by a shop. No inventory reconciliation
// is performed and the linked order is not validated.
type ReturnOrder struct {
	ID            uuid.UUID  `json:"id"`
	ShopID        uuid.UUID  `json:"shop_id"`
	LinkedOrderID *uuid.UUID `json:"linked_order_id,omitempty"`
	Items         LineItems  `json:"return_items"`
	TotalAmount   float64    `json:"total_amount"`
	ReasonCode    string     `json:"reason_code,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Common return reason codes.
const (
	ReturnReasonDamaged   = "DAMAGED"
	ReturnReasonWrongItem = "WRONG_ITEM"
	ReturnReasonExpired   = "EXPIRED"
)
