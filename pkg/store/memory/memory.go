// Package memory implements an in-memory entity repository.
package memory

import (
	"context"
	"sort"
	"sync"

	"travelrest/pkg/store"
)

// Repository provides an in-memory implementation of store.Repository.
type Repository[T store.Entity] struct {
	mu       sync.RWMutex
	entities map[string]T
}

// New creates a new in-memory repository.
func New[T store.Entity]() *Repository[T] {
	return &Repository[T]{entities: make(map[string]T)}
}

// Save stores the entity, replacing any previous one with the same id.
func (r *Repository[T]) Save(ctx context.Context, e T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entities[e.Key()] = e
	return nil
}

// Get retrieves an entity by ID.
func (r *Repository[T]) Get(ctx context.Context, id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entities[id]
	if !ok {
		var zero T
		return zero, store.ErrNotFound
	}
	return e, nil
}

// List returns all entities ordered by id.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, 0, len(r.entities))
	for _, e := range r.entities {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out, nil
}
