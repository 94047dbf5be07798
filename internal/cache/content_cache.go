package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"creatorlab/internal/logger"
	"creatorlab/internal/model"
	"creatorlab/internal/repository"
)

const contentListKey = "contents:all"

// contentCache is a read-through Redis cache in front of a ContentStore.
// Redis failures are logged and the backing store answers instead.
type contentCache struct {
	next   repository.ContentStore
	client redis.Cmdable
	ttl    time.Duration
	log    *logger.Logger
}

// NewContentCache decorates next with a Redis read-through cache
func NewContentCache(next repository.ContentStore, client redis.Cmdable, ttl time.Duration, log *logger.Logger) repository.ContentStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if log == nil {
		log = logger.Nop()
	}
	return &contentCache{
		next:   next,
		client: client,
		ttl:    ttl,
		log:    log.With("service", "ContentCache"),
	}
}

func (c *contentCache) key(id string) string {
	return fmt.Sprintf("content:%s", id)
}

func (c *contentCache) Save(ctx context.Context, content *model.Content) (string, error) {
	id, err := c.next.Save(ctx, content)
	if err != nil {
		return "", err
	}
	c.invalidate(ctx, contentListKey)
	return id, nil
}

func (c *contentCache) AppendComment(ctx context.Context, contentID string, comment model.CommunityComment) (string, error) {
	id, err := c.next.AppendComment(ctx, contentID, comment)
	if err != nil {
		return "", err
	}
	c.invalidate(ctx, c.key(contentID), contentListKey)
	return id, nil
}

func (c *contentCache) List(ctx context.Context) ([]*model.Content, error) {
	var cached []*model.Content
	if c.get(ctx, contentListKey, &cached) {
		return cached, nil
	}
	list, err := c.next.List(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, contentListKey, list)
	return list, nil
}

func (c *contentCache) ListByAuthor(ctx context.Context, authorName string) ([]*model.Content, error) {
	return c.next.ListByAuthor(ctx, authorName)
}

func (c *contentCache) GetByID(ctx context.Context, id string) (*model.Content, error) {
	var cached model.Content
	if c.get(ctx, c.key(id), &cached) {
		return &cached, nil
	}
	content, err := c.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, c.key(id), content)
	return content, nil
}

func (c *contentCache) get(ctx context.Context, key string, out any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		c.log.Warn("cache read failed", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.log.Warn("cache entry unreadable", "key", key, "error", err)
		return false
	}
	return true
}

func (c *contentCache) set(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("cache write failed", "key", key, "error", err)
	}
}

func (c *contentCache) invalidate(ctx context.Context, keys ...string) {
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("cache invalidation failed", "keys", keys, "error", err)
	}
}
