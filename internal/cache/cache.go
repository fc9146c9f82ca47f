package cache

import (
	"context"
	"errors"

	"marketplace/internal/domain/entities"
)

// CartCache 购物车视图缓存接口
type CartCache interface {
	Get(ctx context.Context, userID string) (*entities.CartView, error)
	Set(ctx context.Context, userID string, view *entities.CartView) error
	Delete(ctx context.Context, userID string) error
}

// ErrCacheMiss 缓存未命中
var ErrCacheMiss = errors.New("cache miss")
