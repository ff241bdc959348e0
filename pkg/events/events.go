// Package events carries notifications about resources created through the API.
package events

import (
	"context"
	"time"
)

// Event announces a change to one resource instance.
type Event struct {
	Type       string    `json:"type"`
	Resource   string    `json:"resource"`
	ID         string    `json:"id"`
	Location   string    `json:"location"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Created builds the event emitted after an entity is stored.
func Created(resource, id, location string) Event {
	return Event{
		Type:       resource + ".created",
		Resource:   resource,
		ID:         id,
		Location:   location,
		OccurredAt: time.Now().UTC(),
	}
}

// Publisher delivers events to interested parties.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Nop discards every event.
type Nop struct{}

// Publish implements Publisher.
func (Nop) Publish(context.Context, Event) error { return nil }
