package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const analyticsCacheTTL = 10 * time.Minute

// AnalyticsCache caches per-user analytics responses in redis. Each user
// has a version counter baked into the cache keys; bumping the counter on
// any goal/task/completion write makes every cached entry for that user
// stale without scanning keys.
type AnalyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAnalyticsCache(client *redis.Client) *AnalyticsCache {
	return &AnalyticsCache{
		client: client,
		ttl:    analyticsCacheTTL,
	}
}

func (ac *AnalyticsCache) versionKey(userID string) string {
	return "analytics:ver:" + userID
}

func (ac *AnalyticsCache) entryKey(ctx context.Context, userID, name string) (string, error) {
	ver, err := ac.client.Get(ctx, ac.versionKey(userID)).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return fmt.Sprintf("analytics:%s:%d:%s", userID, ver, name), nil
}

// Get loads a cached entry into out. The bool reports whether it was found.
func (ac *AnalyticsCache) Get(ctx context.Context, userID, name string, out interface{}) (bool, error) {
	key, err := ac.entryKey(ctx, userID, name)
	if err != nil {
		return false, err
	}
	data, err := ac.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores a computed entry under the user's current version.
func (ac *AnalyticsCache) Set(ctx context.Context, userID, name string, value interface{}) error {
	key, err := ac.entryKey(ctx, userID, name)
	if err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return ac.client.Set(ctx, key, data, ac.ttl).Err()
}

// Invalidate marks every cached analytics entry for the user stale.
func (ac *AnalyticsCache) Invalidate(ctx context.Context, userID string) error {
	return ac.client.Incr(ctx, ac.versionKey(userID)).Err()
}
