// Package rediscache decorates a repository with a Redis read-through cache.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"travelrest/pkg/logger"
	"travelrest/pkg/metrics"
	"travelrest/pkg/store"
)

// Repository serves Get from Redis when it can and from the wrapped
// repository otherwise. Redis failures are logged, never returned.
type Repository[T store.Entity] struct {
	next     store.Repository[T]
	client   redis.Cmdable
	resource string
	prefix   string
	ttl      time.Duration
	log      *logger.Logger
	metrics  *metrics.Metrics
}

// Config holds the cache settings for one resource.
type Config struct {
	Resource string
	TTL      time.Duration
}

// New wraps next. m may be nil.
func New[T store.Entity](next store.Repository[T], client redis.Cmdable, cfg Config, log *logger.Logger, m *metrics.Metrics) *Repository[T] {
	return &Repository[T]{
		next:     next,
		client:   client,
		resource: cfg.Resource,
		prefix:   cfg.Resource + ":",
		ttl:      cfg.TTL,
		log:      log,
		metrics:  m,
	}
}

// Save writes to the wrapped repository, then refreshes the cached copy.
func (r *Repository[T]) Save(ctx context.Context, e T) error {
	if err := r.next.Save(ctx, e); err != nil {
		return err
	}
	r.set(ctx, e)
	return nil
}

// Get retrieves an entity by ID.
func (r *Repository[T]) Get(ctx context.Context, id string) (T, error) {
	data, err := r.client.Get(ctx, r.prefix+id).Bytes()
	switch {
	case err == nil:
		var e T
		if err := json.Unmarshal(data, &e); err == nil {
			r.count("hit")
			return e, nil
		}
		r.log.Warn(ctx, "discarding undecodable cache entry", "key", r.prefix+id)
	case errors.Is(err, redis.Nil):
	default:
		r.log.Warn(ctx, "cache get failed, falling back to store", "key", r.prefix+id, "error", err)
	}
	r.count("miss")

	e, err := r.next.Get(ctx, id)
	if err != nil {
		return e, err
	}
	r.set(ctx, e)
	return e, nil
}

// List is not cached.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	return r.next.List(ctx)
}

func (r *Repository[T]) set(ctx context.Context, e T) {
	data, err := json.Marshal(e)
	if err != nil {
		r.log.Warn(ctx, "cache encode failed", "id", e.Key(), "error", err)
		return
	}
	if err := r.client.Set(ctx, r.prefix+e.Key(), data, r.ttl).Err(); err != nil {
		r.log.Warn(ctx, "cache set failed", "id", e.Key(), "error", err)
	}
}

func (r *Repository[T]) count(result string) {
	if r.metrics != nil {
		r.metrics.CacheOperations.WithLabelValues(r.resource, result).Inc()
	}
}
