// Package store defines the keyed storage contract shared by every resource.
package store

import (
	"context"
	"errors"
)

// Entity is anything stored under a unique id.
type Entity interface {
	Key() string
}

// Repository defines behavior for persisting entities of one resource.
type Repository[T Entity] interface {
	Save(ctx context.Context, e T) error
	Get(ctx context.Context, id string) (T, error)
	List(ctx context.Context) ([]T, error)
}

// ErrNotFound indicates the requested entity does not exist.
var ErrNotFound = errors.New("entity not found")
