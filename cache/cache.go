// Package cache provides a Redis-backed lookup cache for fetched
// records, keyed by normalized accession.
//
// The cache is strictly an optimization: all read paths degrade to a
// miss on any Redis or decode failure, and the loader works with a nil
// cache. Metadata values are msgpack-encoded; structure payloads are
// stored raw.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/types"
)

// DefaultTTL bounds how long cached records are served before a
// re-fetch.
const DefaultTTL = 24 * time.Hour

// DefaultTimeout is the per-operation Redis timeout.
const DefaultTimeout = 5 * time.Second

const (
	metaKeyPrefix    = "protein:meta:"
	payloadKeyPrefix = "protein:pdb:"
)

// Config configures the cache.
type Config struct {
	// URL is the Redis connection URL (required).
	// Format: redis://[:password@]host:port[/db]
	URL string
	// TTL is the expiry for cached records (default 24h).
	TTL time.Duration
	// Timeout is the per-operation timeout (default 5s).
	Timeout time.Duration
}

// Cache stores metadata records and structure payloads in Redis.
// A nil *Cache is valid: every method degrades to a miss or a no-op.
type Cache struct {
	client  *goredis.Client
	ttl     time.Duration
	timeout time.Duration
}

// New creates a cache from the given config.
// Returns an error if the URL is empty or invalid.
func New(cfg Config) (*Cache, error) {
	if cfg.URL == "" {
		return nil, errors.New("cache requires a URL")
	}
	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("cache: invalid URL: %w", err)
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Cache{
		client:  goredis.NewClient(opts),
		ttl:     cfg.TTL,
		timeout: cfg.Timeout,
	}, nil
}

// GetMetadata returns the cached metadata for an accession. Any Redis
// or decode failure is reported as a miss.
func (c *Cache) GetMetadata(ctx context.Context, acc types.Accession) (*types.ProteinMetadata, bool) {
	if c == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.client.Get(ctx, metaKeyPrefix+string(acc)).Bytes()
	if err != nil {
		return nil, false
	}
	var meta types.ProteinMetadata
	if err := msgpack.Unmarshal(raw, &meta); err != nil {
		return nil, false
	}
	return &meta, true
}

// SetMetadata stores a metadata record under its accession.
func (c *Cache) SetMetadata(ctx context.Context, meta *types.ProteinMetadata) error {
	if c == nil || meta == nil {
		return nil
	}
	raw, err := msgpack.Marshal(meta)
	if err != nil {
		return fmt.Errorf("cache: encode metadata: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.client.Set(ctx, metaKeyPrefix+string(meta.Accession), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: store metadata %s: %w", meta.Accession, err)
	}
	return nil
}

// GetPayload returns the cached structure payload for an accession.
// Any Redis failure is reported as a miss.
func (c *Cache) GetPayload(ctx context.Context, acc types.Accession) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.client.Get(ctx, payloadKeyPrefix+string(acc)).Bytes()
	if err != nil || len(raw) == 0 {
		return nil, false
	}
	return raw, true
}

// SetPayload stores a structure payload under its accession.
func (c *Cache) SetPayload(ctx context.Context, acc types.Accession, payload []byte) error {
	if c == nil || len(payload) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.client.Set(ctx, payloadKeyPrefix+string(acc), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: store payload %s: %w", acc, err)
	}
	return nil
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
