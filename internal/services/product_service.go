package services

import (
	"time"

	"marketplace/internal/domain/entities"
	"marketplace/internal/domain/repositories"
	"marketplace/internal/logger"
	"marketplace/internal/messaging"

	"github.com/google/uuid"
)

// ProductService 商品服务。商家侧操作要求商家审核通过且未被封禁，
// 买家侧读取在查询时重新计算可见性。
type ProductService struct {
	repo       repositories.ProductRepository
	vendorRepo repositories.VendorRepository
	logRepo    repositories.ApprovalLogRepository
	publisher  EventPublisher
	logger     logger.Logger
}

// NewProductService 创建商品服务
func NewProductService(
	repo repositories.ProductRepository,
	vendorRepo repositories.VendorRepository,
	logRepo repositories.ApprovalLogRepository,
	publisher EventPublisher,
	logger logger.Logger,
) *ProductService {
	return &ProductService{
		repo:       repo,
		vendorRepo: vendorRepo,
		logRepo:    logRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// activeVendor 取出可经营的商家：审核通过且未被封禁
func (s *ProductService) activeVendor(userID string) (entities.VendorProfile, error) {
	vendor, err := s.vendorRepo.FindByUserID(userID)
	if err != nil {
		return entities.VendorProfile{}, err
	}

	if vendor.IsBlocked {
		return entities.VendorProfile{}, ErrVendorBlocked
	}
	if !vendor.IsApproved() {
		return entities.VendorProfile{}, ErrVendorNotApproved
	}

	return vendor, nil
}

// Create 商家创建商品
func (s *ProductService) Create(userID string, dto entities.CreateProductDTO) (entities.Product, error) {
	vendor, err := s.activeVendor(userID)
	if err != nil {
		return entities.Product{}, err
	}

	product := entities.Product{
		ID:          uuid.New(),
		VendorID:    vendor.ID,
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price,
		Quantity:    dto.Quantity,
		Status:      entities.ProductStatusActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	return s.repo.Create(product)
}

// ListOwn 商家的商品列表
func (s *ProductService) ListOwn(userID string) ([]entities.Product, error) {
	vendor, err := s.activeVendor(userID)
	if err != nil {
		return nil, err
	}

	return s.repo.FindByVendor(vendor.ID.String())
}

// GetOwn 商家查看自己的商品，非本店商品按不存在处理
func (s *ProductService) GetOwn(userID, productID string) (entities.Product, error) {
	vendor, err := s.activeVendor(userID)
	if err != nil {
		return entities.Product{}, err
	}

	product, err := s.repo.FindByID(productID)
	if err != nil {
		return entities.Product{}, err
	}
	if product.VendorID != vendor.ID {
		return entities.Product{}, repositories.ErrNotFound
	}

	return product, nil
}

// Update 商家更新商品
func (s *ProductService) Update(userID, productID string, dto entities.UpdateProductDTO) (entities.Product, error) {
	product, err := s.GetOwn(userID, productID)
	if err != nil {
		return entities.Product{}, err
	}

	if dto.Name != "" {
		product.Name = dto.Name
	}
	if dto.Description != "" {
		product.Description = dto.Description
	}
	if dto.Price != nil {
		product.Price = *dto.Price
	}
	if dto.Quantity != nil {
		product.Quantity = *dto.Quantity
	}
	if dto.Status != "" {
		product.Status = dto.Status
	}

	product.UpdatedAt = time.Now()

	return s.repo.Update(product)
}

// Delete 商家删除商品
func (s *ProductService) Delete(userID, productID string) error {
	product, err := s.GetOwn(userID, productID)
	if err != nil {
		return err
	}

	return s.repo.Delete(product.ID.String())
}

// AttachImage 记录商品图片的对象存储Key
func (s *ProductService) AttachImage(userID, productID, objectKey string) (entities.Product, error) {
	product, err := s.GetOwn(userID, productID)
	if err != nil {
		return entities.Product{}, err
	}

	product.ImageKey = objectKey
	product.UpdatedAt = time.Now()

	return s.repo.Update(product)
}

// ListVisible 买家可见商品列表
func (s *ProductService) ListVisible(search string) ([]entities.Product, error) {
	return s.repo.FindVisible(search)
}

// GetVisible 买家查看商品详情。可购买条件在读取时重新计算，
// 不满足则按不存在处理。
func (s *ProductService) GetVisible(productID string) (entities.Product, error) {
	product, err := s.repo.FindByID(productID)
	if err != nil {
		return entities.Product{}, err
	}

	vendor, err := s.vendorRepo.FindByID(product.VendorID.String())
	if err != nil {
		return entities.Product{}, err
	}

	if product.Status != entities.ProductStatusActive || !product.Purchasable(vendor) {
		return entities.Product{}, repositories.ErrNotFound
	}

	return product, nil
}

// ListAll 管理端商品列表
func (s *ProductService) ListAll(filter entities.ProductFilter) ([]entities.Product, error) {
	return s.repo.FindAll(filter)
}

// Get 管理端查看商品（不做可见性过滤）
func (s *ProductService) Get(productID string) (entities.Product, error) {
	return s.repo.FindByID(productID)
}

// Block 管理员封禁商品，原因必填
func (s *ProductService) Block(productID, adminUserID, reason string) (entities.Product, error) {
	if reason == "" {
		return entities.Product{}, ErrReasonRequired
	}

	product, err := s.repo.FindByID(productID)
	if err != nil {
		return entities.Product{}, err
	}

	product.IsBlocked = true
	product.BlockedReason = reason
	product.UpdatedAt = time.Now()

	updated, err := s.repo.Update(product)
	if err != nil {
		return entities.Product{}, err
	}

	s.appendLog(updated, adminUserID, entities.ActionBlocked, reason)
	s.publish(messaging.EventTypeProductBlocked, updated, adminUserID, entities.ActionBlocked, reason)

	return updated, nil
}

// Unblock 管理员解封商品
func (s *ProductService) Unblock(productID, adminUserID, reason string) (entities.Product, error) {
	product, err := s.repo.FindByID(productID)
	if err != nil {
		return entities.Product{}, err
	}

	product.IsBlocked = false
	product.BlockedReason = ""
	product.UpdatedAt = time.Now()

	updated, err := s.repo.Update(product)
	if err != nil {
		return entities.Product{}, err
	}

	s.appendLog(updated, adminUserID, entities.ActionUnblocked, reason)
	s.publish(messaging.EventTypeProductUnblocked, updated, adminUserID, entities.ActionUnblocked, reason)

	return updated, nil
}

// Logs 列出商品的封禁日志
func (s *ProductService) Logs(productID string) ([]entities.ProductApprovalLog, error) {
	return s.logRepo.ListProductLogs(productID)
}

func (s *ProductService) appendLog(product entities.Product, adminUserID string, action entities.ApprovalAction, reason string) {
	_, err := s.logRepo.CreateProductLog(entities.ProductApprovalLog{
		ID:          uuid.New(),
		ProductID:   product.ID,
		AdminUserID: adminUserID,
		Action:      action,
		Reason:      reason,
		Timestamp:   time.Now(),
	})
	if err != nil {
		s.logger.WithError(err).Error("写入商品封禁日志失败: product=%s action=%s", product.ID, action)
	}
}

func (s *ProductService) publish(eventType string, product entities.Product, adminUserID string, action entities.ApprovalAction, reason string) {
	if s.publisher == nil {
		return
	}

	err := s.publisher.Publish(eventType, messaging.ProductReviewPayload{
		ProductID:   product.ID.String(),
		VendorID:    product.VendorID.String(),
		Name:        product.Name,
		AdminUserID: adminUserID,
		Action:      string(action),
		Reason:      reason,
	})
	if err != nil {
		s.logger.WithError(err).Error("发布商品事件失败: %s", eventType)
	}
}
