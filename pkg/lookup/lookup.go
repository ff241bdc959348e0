// Package lookup retrieves entities by id, reporting absence as a value.
package lookup

import (
	"context"
	"errors"

	"travelrest/pkg/store"
)

// Getter is the storage dependency of a Service.
type Getter[T any] interface {
	Get(ctx context.Context, id string) (T, error)
}

// Service resolves ids against a Getter.
type Service[T any] struct {
	getter Getter[T]
}

// New returns a Service reading from g.
func New[T any](g Getter[T]) *Service[T] {
	return &Service[T]{getter: g}
}

// Retrieve returns the entity stored under id. A missing entity, including
// one asked for with an empty id, yields ok == false and a nil error; only
// storage faults are returned as errors.
func (s *Service[T]) Retrieve(ctx context.Context, id string) (e T, ok bool, err error) {
	if id == "" {
		return e, false, nil
	}
	e, err = s.getter.Get(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		var zero T
		return zero, false, nil
	case err != nil:
		var zero T
		return zero, false, err
	}
	return e, true, nil
}
