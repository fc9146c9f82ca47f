package entities

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalStatus 商家审核状态
type ApprovalStatus string

const (
	// ApprovalPending 待审核
	ApprovalPending ApprovalStatus = "pending"
	// ApprovalApproved 审核通过
	ApprovalApproved ApprovalStatus = "approved"
	// ApprovalRejected 审核拒绝
	ApprovalRejected ApprovalStatus = "rejected"
)

// BusinessType 经营类型
type BusinessType string

const (
	BusinessRetail       BusinessType = "retail"
	BusinessWholesale    BusinessType = "wholesale"
	BusinessManufacturer BusinessType = "manufacturer"
	BusinessService      BusinessType = "service"
)

// VendorProfile 商家资料实体，与用户一对一
type VendorProfile struct {
	ID              uuid.UUID      `json:"id" db:"id"`
	UserID          string         `json:"user_id" db:"user_id"`
	ShopName        string         `json:"shop_name" db:"shop_name"`
	ShopDescription string         `json:"shop_description" db:"shop_description"`
	Address         string         `json:"address" db:"address"`
	BusinessType    BusinessType   `json:"business_type" db:"business_type"`
	GSTNumber       string         `json:"gst_number" db:"gst_number"`
	PANNumber       string         `json:"pan_number" db:"pan_number"`
	PANName         string         `json:"pan_name" db:"pan_name"`
	IDProofKey      string         `json:"id_proof_key" db:"id_proof_key"` // 资质文件的对象存储Key
	ApprovalStatus  ApprovalStatus `json:"approval_status" db:"approval_status"`
	RejectionReason string         `json:"rejection_reason" db:"rejection_reason"`
	IsBlocked       bool           `json:"is_blocked" db:"is_blocked"`
	BlockedReason   string         `json:"blocked_reason" db:"blocked_reason"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}

// IsApproved 审核是否通过
func (v VendorProfile) IsApproved() bool {
	return v.ApprovalStatus == ApprovalApproved
}

// CanSell 商品是否可售：审核通过且未被封禁
func (v VendorProfile) CanSell() bool {
	return v.IsApproved() && !v.IsBlocked
}

// RegisterVendorDTO 商家注册DTO（用户账号 + 店铺资料）
type RegisterVendorDTO struct {
	Name            string       `json:"name" binding:"required"`
	Email           string       `json:"email" binding:"required,email"`
	Password        string       `json:"password" binding:"required,min=6"`
	ShopName        string       `json:"shop_name" binding:"required"`
	ShopDescription string       `json:"shop_description" binding:"required"`
	Address         string       `json:"address" binding:"required"`
	BusinessType    BusinessType `json:"business_type" binding:"required,oneof=retail wholesale manufacturer service"`
	GSTNumber       string       `json:"gst_number"`
	PANNumber       string       `json:"pan_number"`
	PANName         string       `json:"pan_name"`
}

// VendorFilter 商家列表过滤条件
type VendorFilter struct {
	Status  ApprovalStatus
	Search  string
	Blocked *bool
}
