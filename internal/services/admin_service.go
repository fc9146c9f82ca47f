package services

import (
	"marketplace/internal/domain/entities"
	"marketplace/internal/domain/repositories"
	"marketplace/internal/logger"
)

// AdminService 管理端统计服务
type AdminService struct {
	vendorRepo  repositories.VendorRepository
	productRepo repositories.ProductRepository
	logger      logger.Logger
}

// NewAdminService 创建管理端统计服务
func NewAdminService(
	vendorRepo repositories.VendorRepository,
	productRepo repositories.ProductRepository,
	logger logger.Logger,
) *AdminService {
	return &AdminService{
		vendorRepo:  vendorRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// DashboardStats 管理端首页统计数据
func (s *AdminService) DashboardStats() (entities.DashboardStats, error) {
	var stats entities.DashboardStats
	var err error

	if stats.TotalVendors, err = s.vendorRepo.CountAll(); err != nil {
		return stats, err
	}
	if stats.PendingVendors, err = s.vendorRepo.CountByStatus(entities.ApprovalPending); err != nil {
		return stats, err
	}
	if stats.ApprovedVendors, err = s.vendorRepo.CountByStatus(entities.ApprovalApproved); err != nil {
		return stats, err
	}
	if stats.RejectedVendors, err = s.vendorRepo.CountByStatus(entities.ApprovalRejected); err != nil {
		return stats, err
	}
	if stats.BlockedVendors, err = s.vendorRepo.CountBlocked(); err != nil {
		return stats, err
	}
	if stats.TotalProducts, err = s.productRepo.CountAll(); err != nil {
		return stats, err
	}
	if stats.BlockedProducts, err = s.productRepo.CountBlocked(); err != nil {
		return stats, err
	}

	return stats, nil
}
