package entities

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalAction 管理员审核动作
type ApprovalAction string

const (
	ActionApproved  ApprovalAction = "approved"
	ActionRejected  ApprovalAction = "rejected"
	ActionBlocked   ApprovalAction = "blocked"
	ActionUnblocked ApprovalAction = "unblocked"
)

// VendorApprovalLog 商家审核日志。只追加，不修改不删除。
type VendorApprovalLog struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	VendorID    uuid.UUID      `json:"vendor_id" db:"vendor_id"`
	AdminUserID string         `json:"admin_user_id" db:"admin_user_id"`
	Action      ApprovalAction `json:"action" db:"action"`
	Reason      string         `json:"reason" db:"reason"`
	Timestamp   time.Time      `json:"timestamp" db:"timestamp"`
}

// ProductApprovalLog 商品封禁日志。只追加，不修改不删除。
type ProductApprovalLog struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	ProductID   uuid.UUID      `json:"product_id" db:"product_id"`
	AdminUserID string         `json:"admin_user_id" db:"admin_user_id"`
	Action      ApprovalAction `json:"action" db:"action"`
	Reason      string         `json:"reason" db:"reason"`
	Timestamp   time.Time      `json:"timestamp" db:"timestamp"`
}

// ReviewDTO 管理员审核请求（原因在拒绝、封禁时必填）
type ReviewDTO struct {
	Reason string `json:"reason"`
}
