package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dermclinic/internal/model"

	"github.com/redis/go-redis/v9"
)

// maxSaved is how many past results a visitor keeps, newest first.
const maxSaved = 3

// SavedInsightCache handles Redis operations for a visitor's saved results
type SavedInsightCache interface {
	Save(ctx context.Context, visitorID string, entry *model.SavedInsight) error
	List(ctx context.Context, visitorID string) ([]*model.SavedInsight, error)
	Remove(ctx context.Context, visitorID, id string) error
}

type savedInsightCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSavedInsightCache creates a new saved-insight cache
func NewSavedInsightCache(client *redis.Client) SavedInsightCache {
	return &savedInsightCache{
		client: client,
		ttl:    90 * 24 * time.Hour,
	}
}

func (c *savedInsightCache) savedKey(visitorID string) string {
	return fmt.Sprintf("visitor:%s:insights", visitorID)
}

func (c *savedInsightCache) Save(ctx context.Context, visitorID string, entry *model.SavedInsight) error {
	existing, err := c.List(ctx, visitorID)
	if err != nil {
		return err
	}

	// Re-saving the same run replaces the old entry instead of duplicating.
	next := make([]*model.SavedInsight, 0, len(existing)+1)
	next = append(next, entry)
	for _, e := range existing {
		if e.ID != entry.ID {
			next = append(next, e)
		}
	}
	if len(next) > maxSaved {
		next = next[:maxSaved]
	}

	return c.write(ctx, visitorID, next)
}

func (c *savedInsightCache) List(ctx context.Context, visitorID string) ([]*model.SavedInsight, error) {
	items, err := c.client.LRange(ctx, c.savedKey(visitorID), 0, -1).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	entries := make([]*model.SavedInsight, 0, len(items))
	for _, item := range items {
		var entry model.SavedInsight
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			continue
		}
		entries = append(entries, &entry)
	}
	return entries, nil
}

func (c *savedInsightCache) Remove(ctx context.Context, visitorID, id string) error {
	existing, err := c.List(ctx, visitorID)
	if err != nil {
		return err
	}

	next := make([]*model.SavedInsight, 0, len(existing))
	for _, e := range existing {
		if e.ID != id {
			next = append(next, e)
		}
	}

	return c.write(ctx, visitorID, next)
}

func (c *savedInsightCache) write(ctx context.Context, visitorID string, entries []*model.SavedInsight) error {
	key := c.savedKey(visitorID)
	c.client.Del(ctx, key)
	if len(entries) == 0 {
		return nil
	}

	args := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		data, err := json.Marshal(e)
		if err != nil {
			return err
		}
		args = append(args, data)
	}
	if err := c.client.RPush(ctx, key, args...).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, c.ttl).Err()
}
