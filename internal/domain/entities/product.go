package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus 商品状态枚举
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product 商品实体，归属于一个商家
type Product struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	VendorID      uuid.UUID       `json:"vendor_id" db:"vendor_id"`
	Name          string          `json:"name" db:"name"`
	Description   string          `json:"description" db:"description"`
	Price         decimal.Decimal `json:"price" db:"price"`
	Quantity      int             `json:"quantity" db:"quantity"`
	ImageKey      string          `json:"image_key" db:"image_key"` // 商品图片的对象存储Key
	Status        ProductStatus   `json:"status" db:"status"`
	IsBlocked     bool            `json:"is_blocked" db:"is_blocked"`
	BlockedReason string          `json:"blocked_reason" db:"blocked_reason"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// Purchasable 买家是否可购买：商品未封禁，且商家审核通过未封禁。
// 每次读取时重新计算，不做缓存。
func (p Product) Purchasable(vendor VendorProfile) bool {
	return !p.IsBlocked && vendor.CanSell()
}

// CreateProductDTO 创建商品DTO
type CreateProductDTO struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required,min=0"`
}

// UpdateProductDTO 更新商品DTO
type UpdateProductDTO struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	Status      ProductStatus    `json:"status"`
}

// ProductFilter 管理端商品列表过滤条件
type ProductFilter struct {
	Search   string
	VendorID string
	Blocked  *bool
}
