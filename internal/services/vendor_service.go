package services

import (
	"fmt"
	"time"

	"marketplace/internal/domain/entities"
	"marketplace/internal/domain/repositories"
	"marketplace/internal/logger"
	"marketplace/internal/messaging"

	"github.com/google/uuid"
)

// VendorService 商家服务。审核状态流转只能由管理员触发，
// 每次流转追加一条审核日志。
type VendorService struct {
	repo        repositories.VendorRepository
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	logRepo     repositories.ApprovalLogRepository
	publisher   EventPublisher
	notifier    ApprovalNotifier
	logger      logger.Logger
}

// NewVendorService 创建商家服务
func NewVendorService(
	repo repositories.VendorRepository,
	userRepo repositories.UserRepository,
	productRepo repositories.ProductRepository,
	logRepo repositories.ApprovalLogRepository,
	publisher EventPublisher,
	notifier ApprovalNotifier,
	logger logger.Logger,
) *VendorService {
	return &VendorService{
		repo:        repo,
		userRepo:    userRepo,
		productRepo: productRepo,
		logRepo:     logRepo,
		publisher:   publisher,
		notifier:    notifier,
		logger:      logger,
	}
}

// CreateProfile 创建商家资料，注册时调用，初始状态为待审核
func (s *VendorService) CreateProfile(userID string, dto entities.RegisterVendorDTO) (entities.VendorProfile, error) {
	vendor := entities.VendorProfile{
		ID:              uuid.New(),
		UserID:          userID,
		ShopName:        dto.ShopName,
		ShopDescription: dto.ShopDescription,
		Address:         dto.Address,
		BusinessType:    dto.BusinessType,
		GSTNumber:       dto.GSTNumber,
		PANNumber:       dto.PANNumber,
		PANName:         dto.PANName,
		ApprovalStatus:  entities.ApprovalPending,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	return s.repo.Create(vendor)
}

// FindByUserID 通过用户ID查找商家
func (s *VendorService) FindByUserID(userID string) (entities.VendorProfile, error) {
	return s.repo.FindByUserID(userID)
}

// FindByID 通过ID查找商家
func (s *VendorService) FindByID(id string) (entities.VendorProfile, error) {
	return s.repo.FindByID(id)
}

// FindAll 按条件查找商家
func (s *VendorService) FindAll(filter entities.VendorFilter) ([]entities.VendorProfile, error) {
	return s.repo.FindAll(filter)
}

// SetIDProof 记录商家资质文件的对象存储Key
func (s *VendorService) SetIDProof(userID, objectKey string) (entities.VendorProfile, error) {
	vendor, err := s.repo.FindByUserID(userID)
	if err != nil {
		return entities.VendorProfile{}, err
	}

	vendor.IDProofKey = objectKey
	vendor.UpdatedAt = time.Now()

	return s.repo.Update(vendor)
}

// Approve 批准商家。仅待审核状态允许，否则返回状态冲突且不写日志。
func (s *VendorService) Approve(vendorID, adminUserID, reason string) (entities.VendorProfile, error) {
	vendor, err := s.repo.FindByID(vendorID)
	if err != nil {
		return entities.VendorProfile{}, err
	}

	if vendor.ApprovalStatus != entities.ApprovalPending {
		return entities.VendorProfile{}, ErrVendorNotPending
	}

	vendor.ApprovalStatus = entities.ApprovalApproved
	vendor.RejectionReason = ""
	vendor.IsBlocked = false
	vendor.BlockedReason = ""
	vendor.UpdatedAt = time.Now()

	updated, err := s.repo.Update(vendor)
	if err != nil {
		return entities.VendorProfile{}, err
	}

	s.appendLog(updated, adminUserID, entities.ActionApproved, reason)
	s.notifyAndPublish(updated, adminUserID, entities.ActionApproved, reason, messaging.EventTypeVendorApproved)

	return updated, nil
}

// Reject 拒绝商家。仅待审核状态允许，且原因必填。
func (s *VendorService) Reject(vendorID, adminUserID, reason string) (entities.VendorProfile, error) {
	if reason == "" {
		return entities.VendorProfile{}, ErrReasonRequired
	}

	vendor, err := s.repo.FindByID(vendorID)
	if err != nil {
		return entities.VendorProfile{}, err
	}

	if vendor.ApprovalStatus != entities.ApprovalPending {
		return entities.VendorProfile{}, ErrVendorNotPending
	}

	vendor.ApprovalStatus = entities.ApprovalRejected
	vendor.RejectionReason = reason
	vendor.UpdatedAt = time.Now()

	updated, err := s.repo.Update(vendor)
	if err != nil {
		return entities.VendorProfile{}, err
	}

	s.appendLog(updated, adminUserID, entities.ActionRejected, reason)
	s.notifyAndPublish(updated, adminUserID, entities.ActionRejected, reason, messaging.EventTypeVendorRejected)

	return updated, nil
}

// Block 封禁商家，任意审核状态均可，原因必填。
// 同时一次性批量封禁该商家当前的全部商品。
func (s *VendorService) Block(vendorID, adminUserID, reason string) (entities.VendorProfile, error) {
	if reason == "" {
		return entities.VendorProfile{}, ErrReasonRequired
	}

	vendor, err := s.repo.FindByID(vendorID)
	if err != nil {
		return entities.VendorProfile{}, err
	}

	vendor.IsBlocked = true
	vendor.BlockedReason = reason
	vendor.UpdatedAt = time.Now()

	updated, err := s.repo.Update(vendor)
	if err != nil {
		return entities.VendorProfile{}, err
	}

	// 级联封禁商家的全部商品
	derived := fmt.Sprintf("vendor blocked: %s", reason)
	blocked, err := s.productRepo.BlockByVendor(updated.ID.String(), derived)
	if err != nil {
		s.logger.WithError(err).Error("级联封禁商品失败: vendor=%s", updated.ID)
	} else {
		s.logger.Info("商家 %s 被封禁，级联封禁商品 %d 件", updated.ShopName, blocked)
	}

	s.appendLog(updated, adminUserID, entities.ActionBlocked, reason)
	s.notifyAndPublish(updated, adminUserID, entities.ActionBlocked, reason, messaging.EventTypeVendorBlocked)

	return updated, nil
}

// Unblock 解封商家。不级联解封商品，商品需单独解封。
func (s *VendorService) Unblock(vendorID, adminUserID, reason string) (entities.VendorProfile, error) {
	vendor, err := s.repo.FindByID(vendorID)
	if err != nil {
		return entities.VendorProfile{}, err
	}

	vendor.IsBlocked = false
	vendor.BlockedReason = ""
	vendor.UpdatedAt = time.Now()

	updated, err := s.repo.Update(vendor)
	if err != nil {
		return entities.VendorProfile{}, err
	}

	s.appendLog(updated, adminUserID, entities.ActionUnblocked, reason)
	s.notifyAndPublish(updated, adminUserID, entities.ActionUnblocked, reason, messaging.EventTypeVendorUnblocked)

	return updated, nil
}

// Logs 列出商家的审核日志
func (s *VendorService) Logs(vendorID string) ([]entities.VendorApprovalLog, error) {
	return s.logRepo.ListVendorLogs(vendorID)
}

// appendLog 追加审核日志
func (s *VendorService) appendLog(vendor entities.VendorProfile, adminUserID string, action entities.ApprovalAction, reason string) {
	_, err := s.logRepo.CreateVendorLog(entities.VendorApprovalLog{
		ID:          uuid.New(),
		VendorID:    vendor.ID,
		AdminUserID: adminUserID,
		Action:      action,
		Reason:      reason,
		Timestamp:   time.Now(),
	})
	if err != nil {
		s.logger.WithError(err).Error("写入商家审核日志失败: vendor=%s action=%s", vendor.ID, action)
	}
}

// notifyAndPublish 发布审核事件并通知商家，失败只记日志不影响主流程
func (s *VendorService) notifyAndPublish(vendor entities.VendorProfile, adminUserID string, action entities.ApprovalAction, reason, eventType string) {
	if s.publisher != nil {
		err := s.publisher.Publish(eventType, messaging.VendorReviewPayload{
			VendorID:    vendor.ID.String(),
			ShopName:    vendor.ShopName,
			AdminUserID: adminUserID,
			Action:      string(action),
			Reason:      reason,
		})
		if err != nil {
			s.logger.WithError(err).Error("发布商家审核事件失败: %s", eventType)
		}
	}

	if s.notifier != nil {
		user, err := s.userRepo.FindByID(vendor.UserID)
		if err != nil {
			s.logger.WithError(err).Error("查找商家用户失败: %s", vendor.UserID)
			return
		}
		if err := s.notifier.SendApprovalResult(user.Email, vendor.ShopName, string(action), reason); err != nil {
			s.logger.WithError(err).Error("发送审核通知邮件失败: %s", user.Email)
		}
	}
}
