package repositories

import (
	"marketplace/internal/domain/entities"
)

// AddressRepository 收货地址仓库接口
type AddressRepository interface {
	// Create 新增收货地址
	Create(address entities.Address) (entities.Address, error)

	// FindByUser 列出用户的收货地址
	FindByUser(userID string) ([]entities.Address, error)

	// Delete 删除用户的收货地址
	Delete(id, userID string) error
}
