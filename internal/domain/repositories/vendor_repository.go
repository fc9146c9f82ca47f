package repositories

import (
	"marketplace/internal/domain/entities"
)

// VendorRepository 商家资料仓库接口
type VendorRepository interface {
	// Create 创建商家资料
	Create(vendor entities.VendorProfile) (entities.VendorProfile, error)

	// FindByID 通过ID查找商家
	FindByID(id string) (entities.VendorProfile, error)

	// FindByUserID 通过用户ID查找商家
	FindByUserID(userID string) (entities.VendorProfile, error)

	// FindAll 按条件查找商家
	FindAll(filter entities.VendorFilter) ([]entities.VendorProfile, error)

	// Update 更新商家资料
	Update(vendor entities.VendorProfile) (entities.VendorProfile, error)

	// CountAll 商家总数
	CountAll() (int, error)

	// CountByStatus 按审核状态统计商家数
	CountByStatus(status entities.ApprovalStatus) (int, error)

	// CountBlocked 被封禁商家数
	CountBlocked() (int, error)
}
