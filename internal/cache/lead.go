package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/leadflow/crm/internal/model"
	"github.com/vmihailenco/msgpack/v5"
)

const cachedLeadTimeToLive = 10 * time.Minute

// LeadCache is a read-through cache in front of the lead store.
type LeadCache interface {
	FindByID(context.Context, string) (*model.Lead, error)
	EvictByID(context.Context, string) error
	Cache(context.Context, *model.Lead) error
	Refresh(context.Context, *model.Lead) error
}

type redisLeadCache struct {
	client *redis.Client
}

func NewRedisLeadCache(client *redis.Client) LeadCache {
	return &redisLeadCache{client: client}
}

func (r *redisLeadCache) FindByID(ctx context.Context, id string) (*model.Lead, error) {
	res, err := r.client.Get(ctx, r.key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var l model.Lead
	if err := msgpack.Unmarshal([]byte(res), &l); err != nil {
		return nil, err
	}

	return &l, nil
}

func (r *redisLeadCache) EvictByID(ctx context.Context, id string) error {
	if _, err := r.client.Del(ctx, r.key(id)).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisLeadCache) Cache(ctx context.Context, l *model.Lead) error {
	encoded, err := msgpack.Marshal(l)
	if err != nil {
		return err
	}

	_, err = r.client.SetNX(ctx, r.key(l.ID), encoded, cachedLeadTimeToLive).Result()
	if err != nil {
		return err
	}
	return nil
}

// Refresh overwrites whatever copy is cached with the fresh post-image.
// Unlike Cache it must win even when a concurrent read re-populated the key
// with the pre-image between an evict and a write.
func (r *redisLeadCache) Refresh(ctx context.Context, l *model.Lead) error {
	encoded, err := msgpack.Marshal(l)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key(l.ID), encoded, cachedLeadTimeToLive).Err(); err != nil {
		return err
	}
	return nil
}

func (r *redisLeadCache) key(id string) string {
	return fmt.Sprintf("lead:%s", id)
}
