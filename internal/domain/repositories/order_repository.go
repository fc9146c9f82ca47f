package repositories

import (
	"marketplace/internal/domain/entities"
)

// OrderRepository 订单仓库接口。订单创建后只读。
type OrderRepository interface {
	// Create 创建订单头及其行项
	Create(order entities.Order, items []entities.OrderItem) (entities.Order, error)

	// FindByUser 查找用户订单，按下单时间倒序
	FindByUser(userID string) ([]entities.Order, error)

	// ListItems 列出订单行项
	ListItems(orderID string) ([]entities.OrderItem, error)
}
