package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Ingenimax/orgcontext-go/pkg/interfaces"
	"github.com/Ingenimax/orgcontext-go/pkg/logging"
	"github.com/Ingenimax/orgcontext-go/pkg/multitenancy"
	"github.com/Ingenimax/orgcontext-go/pkg/retry"
)

// RedisCache implements a Redis-backed read cache over a directory store so
// multiple processes share one cache. Listings are stored as JSON snapshots
// with a TTL; a Redis outage degrades to reading the source store directly,
// it never makes the directory less available.
type RedisCache struct {
	source    interfaces.DirectoryStore
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
	retrier   *retry.Executor
	logger    logging.Logger
}

// RedisOption represents an option for configuring the Redis cache
type RedisOption func(*RedisCache)

// WithTTL sets the TTL for cached snapshots
func WithTTL(ttl time.Duration) RedisOption {
	return func(r *RedisCache) {
		r.ttl = ttl
	}
}

// WithKeyPrefix sets a custom prefix for Redis keys
func WithKeyPrefix(prefix string) RedisOption {
	return func(r *RedisCache) {
		r.keyPrefix = prefix
	}
}

// WithRetryPolicy configures retry behavior for Redis writes
func WithRetryPolicy(policy *retry.Policy) RedisOption {
	return func(r *RedisCache) {
		r.retrier = retry.NewExecutor(policy)
	}
}

// WithRedisLogger sets the logger used by the Redis cache
func WithRedisLogger(logger logging.Logger) RedisOption {
	return func(r *RedisCache) {
		r.logger = logger
	}
}

// NewRedisCache wraps a store with the Redis read cache.
func NewRedisCache(source interfaces.DirectoryStore, client *redis.Client, options ...RedisOption) *RedisCache {
	cache := &RedisCache{
		source:    source,
		client:    client,
		ttl:       5 * time.Minute,
		keyPrefix: "orgcontext:directory:",
		retrier:   retry.NewExecutor(retry.DefaultPolicy()),
		logger:    logging.New(),
	}

	for _, option := range options {
		option(cache)
	}

	return cache
}

// key builds the cache key for a listing, scoped by organization when the
// context carries one.
func (r *RedisCache) key(ctx context.Context, listing string) string {
	orgID, err := multitenancy.GetOrgID(ctx)
	if err != nil || orgID == "" {
		orgID = "default"
	}
	return r.keyPrefix + orgID + ":" + listing
}

// InvalidateAll deletes every cached snapshot under the key prefix, across
// all organizations.
func (r *RedisCache) InvalidateAll(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, r.keyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}

	if len(keys) > 0 {
		if err := r.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to delete cache keys: %w", err)
		}
	}

	r.logger.Info(ctx, "Directory Redis cache invalidated", map[string]interface{}{
		"keys_deleted": len(keys),
	})
	return nil
}

// readThrough serves a listing from Redis, falling back to the source store
// and repopulating the cache on a miss.
func (r *RedisCache) readThrough(ctx context.Context, listing string, dest interface{}, load func() (interface{}, error)) error {
	key := r.key(ctx, listing)

	data, err := r.client.Get(ctx, key).Result()
	if err == nil {
		if jsonErr := json.Unmarshal([]byte(data), dest); jsonErr == nil {
			return nil
		}
		// Corrupt entry: fall through to the source and overwrite.
		r.logger.Warn(ctx, "Discarding corrupt cache entry", map[string]interface{}{
			"key": key,
		})
	} else if err != redis.Nil {
		r.logger.Warn(ctx, "Redis read failed, serving from source store", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}

	loaded, err := load()
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(loaded)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	// Cache population is best effort; a failed write only costs the next
	// reader a source fetch.
	if setErr := r.retrier.Execute(ctx, func() error {
		return r.client.Set(ctx, key, encoded, r.ttl).Err()
	}); setErr != nil {
		r.logger.Warn(ctx, "Failed to populate cache entry", map[string]interface{}{
			"key":   key,
			"error": setErr.Error(),
		})
	}

	return json.Unmarshal(encoded, dest)
}

// ListPeople returns the people listing through the cache.
func (r *RedisCache) ListPeople(ctx context.Context) ([]*interfaces.Person, error) {
	var people []*interfaces.Person
	err := r.readThrough(ctx, "people", &people, func() (interface{}, error) {
		return r.source.ListPeople(ctx)
	})
	if err != nil {
		return nil, err
	}
	return people, nil
}

// GetPerson serves single-person lookups from the cached people listing.
func (r *RedisCache) GetPerson(ctx context.Context, id string) (*interfaces.Person, error) {
	people, err := r.ListPeople(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range people {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// ListDepartments returns the department listing through the cache.
func (r *RedisCache) ListDepartments(ctx context.Context) ([]*interfaces.Department, error) {
	var departments []*interfaces.Department
	err := r.readThrough(ctx, "departments", &departments, func() (interface{}, error) {
		return r.source.ListDepartments(ctx)
	})
	if err != nil {
		return nil, err
	}
	return departments, nil
}

// ListRelationships returns the relationship listing through the cache.
func (r *RedisCache) ListRelationships(ctx context.Context) ([]interfaces.ReportingRelationship, error) {
	var relationships []interfaces.ReportingRelationship
	err := r.readThrough(ctx, "relationships", &relationships, func() (interface{}, error) {
		return r.source.ListRelationships(ctx)
	})
	if err != nil {
		return nil, err
	}
	return relationships, nil
}

// ListDocuments returns the document listing through the cache.
func (r *RedisCache) ListDocuments(ctx context.Context) ([]*interfaces.Document, error) {
	var documents []*interfaces.Document
	err := r.readThrough(ctx, "documents", &documents, func() (interface{}, error) {
		return r.source.ListDocuments(ctx)
	})
	if err != nil {
		return nil, err
	}
	return documents, nil
}
