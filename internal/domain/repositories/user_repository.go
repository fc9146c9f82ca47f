package repositories

import (
	"marketplace/internal/domain/entities"
)

// UserRepository 用户仓库接口
type UserRepository interface {
	// Create 创建用户
	Create(user entities.User) (entities.User, error)

	// FindByID 通过ID查找用户
	FindByID(id string) (entities.User, error)

	// FindByEmail 通过邮箱查找用户
	FindByEmail(email string) (entities.User, error)
}
