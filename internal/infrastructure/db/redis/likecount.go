package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const likeCountTTL = 5 * time.Minute

// LikeCountCache caches per-post like counts.
// Key format: likes:<post_id>
type LikeCountCache struct {
	client *redis.Client
}

// NewLikeCountCache creates a LikeCountCache wrapping the given Redis client.
func NewLikeCountCache(client *redis.Client) *LikeCountCache {
	return &LikeCountCache{client: client}
}

// Get returns the cached count for a post and whether the key was present.
func (c *LikeCountCache) Get(ctx context.Context, postID string) (int64, bool, error) {
	n, err := c.client.Get(ctx, c.key(postID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("like count get: %w", err)
	}
	return n, true, nil
}

// Set stores the count for a post (expires after likeCountTTL).
func (c *LikeCountCache) Set(ctx context.Context, postID string, count int64) error {
	return c.client.Set(ctx, c.key(postID), count, likeCountTTL).Err()
}

// Invalidate drops the cached count after a new like so the next read
// repopulates from the store.
func (c *LikeCountCache) Invalidate(ctx context.Context, postID string) error {
	return c.client.Del(ctx, c.key(postID)).Err()
}

func (c *LikeCountCache) key(postID string) string {
	return "likes:" + postID
}
