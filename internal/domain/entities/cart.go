package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart 购物车实体，每个用户一个
type Cart struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CartItem 购物车行项
type CartItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CartID    uuid.UUID `json:"cart_id" db:"cart_id"`
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CartLine 购物车展示行，携带商品快照信息
type CartLine struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartView 购物车视图
type CartView struct {
	Items      []CartLine      `json:"items"`
	ItemsCount int             `json:"items_count"`
	Total      decimal.Decimal `json:"total"`
}

// AddCartItemDTO 加入购物车DTO
type AddCartItemDTO struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemDTO 修改购物车行项数量DTO
type UpdateCartItemDTO struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
