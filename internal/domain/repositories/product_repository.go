package repositories

import (
	"marketplace/internal/domain/entities"
)

// ProductRepository 商品仓库接口
type ProductRepository interface {
	// Create 创建商品
	Create(product entities.Product) (entities.Product, error)

	// FindByID 通过ID查找商品
	FindByID(id string) (entities.Product, error)

	// FindByVendor 查找商家的全部商品
	FindByVendor(vendorID string) ([]entities.Product, error)

	// FindAll 管理端按条件查找商品
	FindAll(filter entities.ProductFilter) ([]entities.Product, error)

	// FindVisible 买家可见商品列表：商品未封禁且商家审核通过未封禁，查询时重新计算
	FindVisible(search string) ([]entities.Product, error)

	// Update 更新商品
	Update(product entities.Product) (entities.Product, error)

	// Delete 删除商品
	Delete(id string) error

	// BlockByVendor 批量封禁商家的全部商品，返回受影响行数
	BlockByVendor(vendorID string, reason string) (int64, error)

	// CountAll 商品总数
	CountAll() (int, error)

	// CountBlocked 被封禁商品数
	CountBlocked() (int, error)
}
