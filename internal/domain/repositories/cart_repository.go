package repositories

import (
	"marketplace/internal/domain/entities"
)

// CartRepository 购物车仓库接口
type CartRepository interface {
	// GetOrCreate 获取用户购物车，不存在则创建
	GetOrCreate(userID string) (entities.Cart, error)

	// ListItems 列出购物车行项
	ListItems(cartID string) ([]entities.CartItem, error)

	// FindItem 查找购物车中某商品的行项
	FindItem(cartID, productID string) (entities.CartItem, error)

	// AddItem 新增行项
	AddItem(item entities.CartItem) (entities.CartItem, error)

	// UpdateItemQuantity 修改行项数量
	UpdateItemQuantity(itemID string, quantity int) error

	// RemoveItem 删除行项
	RemoveItem(cartID, productID string) error

	// ClearItems 清空购物车行项
	ClearItems(cartID string) error
}
