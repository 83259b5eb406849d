package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ItemViewCache keeps denormalized item views in Redis so the last/next
// booking and comment lookups are not repeated on every read. A nil cache is
// a no-op, which keeps handlers testable without Redis.
type ItemViewCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewItemViewCache(rdb *redis.Client, ttl time.Duration) *ItemViewCache {
	return &ItemViewCache{rdb: rdb, ttl: ttl}
}

// The owner view carries last/next bookings, the public one does not, so the
// two are cached under separate keys.
func viewKey(itemID int64, ownerView bool) string {
	if ownerView {
		return fmt.Sprintf("shareit:item_view:%d:owner", itemID)
	}
	return fmt.Sprintf("shareit:item_view:%d:public", itemID)
}

func (c *ItemViewCache) Get(ctx context.Context, itemID int64, ownerView bool, dest any) (bool, error) {
	if c == nil || c.rdb == nil {
		return false, nil
	}
	b, err := c.rdb.Get(ctx, viewKey(itemID, ownerView)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *ItemViewCache) Set(ctx context.Context, itemID int64, ownerView bool, v any) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, viewKey(itemID, ownerView), b, c.ttl).Err()
}

// Invalidate drops both views of each item; callers fire it on any write that
// could change an item's rendered view.
func (c *ItemViewCache) Invalidate(ctx context.Context, itemIDs ...int64) error {
	if c == nil || c.rdb == nil || len(itemIDs) == 0 {
		return nil
	}
	pipe := c.rdb.TxPipeline()
	for _, id := range itemIDs {
		pipe.Del(ctx, viewKey(id, true))
		pipe.Del(ctx, viewKey(id, false))
	}
	_, err := pipe.Exec(ctx)
	return err
}
