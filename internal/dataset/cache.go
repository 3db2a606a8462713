package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/orderlens/backend/pkg/redis"
)

const snapshotName = "all_data"

// SnapshotCache keeps the raw CSV bytes in Redis so restarts and sibling
// instances skip refetching the URL source. TTL-bounded; a miss or a cache
// error just falls through to the loader sources.
type SnapshotCache struct {
	store redis.SnapshotStore
	ttl   time.Duration
}

// NewSnapshotCache wraps the given store.
func NewSnapshotCache(store redis.SnapshotStore, ttl time.Duration) (*SnapshotCache, error) {
	if store == nil {
		return nil, fmt.Errorf("snapshot store required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("snapshot ttl must be positive")
	}
	return &SnapshotCache{store: store, ttl: ttl}, nil
}

// Get returns the cached snapshot bytes, reporting a miss as ok=false.
func (c *SnapshotCache) Get(ctx context.Context) ([]byte, bool) {
	value, err := c.store.Get(ctx, c.store.SnapshotKey(snapshotName))
	if err != nil {
		// redis.Nil (a miss) and transport errors both fall through to the
		// loader sources.
		return nil, false
	}
	return []byte(value), true
}

// Put stores the snapshot bytes under the configured TTL.
func (c *SnapshotCache) Put(ctx context.Context, data []byte) error {
	return c.store.Set(ctx, c.store.SnapshotKey(snapshotName), data, c.ttl)
}

// Invalidate drops the cached snapshot.
func (c *SnapshotCache) Invalidate(ctx context.Context) error {
	return c.store.Del(ctx, c.store.SnapshotKey(snapshotName))
}
