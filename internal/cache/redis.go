package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"marketplace/internal/domain/entities"

	"github.com/redis/go-redis/v9"
)

// RedisCache Redis实现的购物车缓存。
// 缓存未命中时回落到数据库，写操作后删除缓存。
type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

var _ CartCache = (*RedisCache)(nil)

// NewRedisCache 创建Redis购物车缓存
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

func cacheKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

// Get 读取缓存的购物车视图
func (r *RedisCache) Get(ctx context.Context, userID string) (*entities.CartView, error) {
	data, err := r.client.Get(ctx, cacheKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get失败: %w", err)
	}

	var view entities.CartView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, fmt.Errorf("反序列化购物车失败: %w", err)
	}

	return &view, nil
}

// Set 写入购物车视图，TTL加抖动避免同时过期
func (r *RedisCache) Set(ctx context.Context, userID string, view *entities.CartView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("序列化购物车失败: %w", err)
	}

	jitter := time.Duration(rand.Intn(5)) * time.Minute
	ttl := r.baseTTL + jitter
	if err := r.client.Set(ctx, cacheKey(userID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set失败: %w", err)
	}

	return nil
}

// Delete 删除缓存，购物车每次变更后调用
func (r *RedisCache) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, cacheKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis del失败: %w", err)
	}
	return nil
}
