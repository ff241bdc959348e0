// Package hotel defines the hotel booking resource.
package hotel

import (
	"github.com/google/uuid"
)

// Hotel is a booking at a hotel.
type Hotel struct {
	ID       string   `json:"id" validate:"max=64"`
	Name     string   `json:"name,omitempty" validate:"max=255"`
	Location string   `json:"location" validate:"max=255"`
	Items    []Item   `json:"items,omitempty" validate:"dive"`
	Payment  *Payment `json:"payment,omitempty"`
}

// Item is one booked line, e.g. a room type and how many of it.
type Item struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Quantity int     `json:"quantity" validate:"min=1"`
	Price    float64 `json:"price" validate:"min=0"`
}

// Payment holds the card details used to pay for a booking.
type Payment struct {
	CardNumber     string  `json:"cardNumber" validate:"required,card_number"`
	CardholderName string  `json:"cardholderName" validate:"required,max=255"`
	ExpiryMonth    int     `json:"expiryMonth" validate:"min=1,max=12"`
	ExpiryYear     int     `json:"expiryYear" validate:"min=2000"`
	Amount         float64 `json:"amount" validate:"min=0"`
}

// Key implements store.Entity.
func (h Hotel) Key() string { return h.ID }

// Normalize assigns an id to a hotel posted without one.
func Normalize(h Hotel) Hotel {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return h
}

// Representation is the public view of a hotel.
type Representation struct {
	Items    []Item   `json:"items"`
	Location string   `json:"location"`
	Payment  *Payment `json:"payment"`
}

// Project maps a hotel to its representation.
func Project(h Hotel) Representation {
	items := h.Items
	if items == nil {
		items = []Item{}
	}
	return Representation{Items: items, Location: h.Location, Payment: h.Payment}
}
