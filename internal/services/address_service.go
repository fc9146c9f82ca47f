package services

import (
	"time"

	"marketplace/internal/domain/entities"
	"marketplace/internal/domain/repositories"
	"marketplace/internal/logger"

	"github.com/google/uuid"
)

// AddressService 收货地址服务
type AddressService struct {
	repo   repositories.AddressRepository
	logger logger.Logger
}

// NewAddressService 创建收货地址服务
func NewAddressService(repo repositories.AddressRepository, logger logger.Logger) *AddressService {
	return &AddressService{repo: repo, logger: logger}
}

// Create 新增收货地址
func (s *AddressService) Create(userID string, dto entities.CreateAddressDTO) (entities.Address, error) {
	return s.repo.Create(entities.Address{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      dto.Name,
		Phone:     dto.Phone,
		Pincode:   dto.Pincode,
		Address:   dto.Address,
		City:      dto.City,
		State:     dto.State,
		CreatedAt: time.Now(),
	})
}

// List 用户地址列表
func (s *AddressService) List(userID string) ([]entities.Address, error) {
	return s.repo.FindByUser(userID)
}

// Delete 删除用户地址，非本人地址按不存在处理
func (s *AddressService) Delete(id, userID string) error {
	return s.repo.Delete(id, userID)
}
