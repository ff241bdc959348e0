package order

import (
	"github.com/google/uuid"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusUnpaid    Status = "unpaid"
	StatusPaid      Status = "paid"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusUnpaid, StatusPaid, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order represents a customer purchase order.
type Order struct {
	ID       string   `json:"id" validate:"max=64"`
	Status   Status   `json:"status" validate:"omitempty,oneof=unpaid paid ready delivered cancelled"`
	Location string   `json:"location" validate:"omitempty,oneof=takeAway inStore"`
	Items    []Item   `json:"items,omitempty" validate:"dive"`
	Payment  *Payment `json:"payment,omitempty"`
}

// Item is one ordered product.
type Item struct {
	Name     string `json:"name" validate:"required,max=255"`
	Size     string `json:"size,omitempty" validate:"omitempty,oneof=small medium large"`
	Milk     string `json:"milk,omitempty" validate:"max=64"`
	Quantity int    `json:"quantity" validate:"min=1"`
}

// Payment holds the card details used to pay for an order.
type Payment struct {
	CardNumber     string  `json:"cardNumber" validate:"required,card_number"`
	CardholderName string  `json:"cardholderName" validate:"required,max=255"`
	ExpiryMonth    int     `json:"expiryMonth" validate:"min=1,max=12"`
	ExpiryYear     int     `json:"expiryYear" validate:"min=2000"`
	Amount         float64 `json:"amount" validate:"min=0"`
}

// Key implements store.Entity.
func (o Order) Key() string { return o.ID }

// Normalize fills in the id and initial status of a new order.
func Normalize(o Order) Order {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = StatusUnpaid
	}
	return o
}

// Representation is the public view of an order.
type Representation struct {
	Status   Status   `json:"status"`
	Items    []Item   `json:"items"`
	Location string   `json:"location"`
	Payment  *Payment `json:"payment"`
}

// Project maps an order to its representation.
func Project(o Order) Representation {
	items := o.Items
	if items == nil {
		items = []Item{}
	}
	return Representation{Status: o.Status, Items: items, Location: o.Location, Payment: o.Payment}
}
