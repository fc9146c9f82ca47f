package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order 订单实体。支付成功时创建，创建后不可变。
type Order struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        string    `json:"user_id" db:"user_id"`
	PaymentMode   string    `json:"payment_mode" db:"payment_mode"`
	TransactionID string    `json:"transaction_id" db:"transaction_id"`
	ItemNames     string    `json:"item_names" db:"item_names"` // 行项摘要，如 "2 x ProductA, 1 x ProductB"
	OrderDate     time.Time `json:"order_date" db:"order_date"`
}

// OrderItem 订单行项，冻结下单时的商品名称与价格
type OrderItem struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	OrderID     uuid.UUID       `json:"order_id" db:"order_id"`
	ProductName string          `json:"product_name" db:"product_name"`
	Quantity    int             `json:"quantity" db:"quantity"`
	Price       decimal.Decimal `json:"price" db:"price"`
}

// OrderDetail 订单及其行项
type OrderDetail struct {
	Order Order       `json:"order"`
	Items []OrderItem `json:"items"`
}

// CheckoutSummary 结算页视图
type CheckoutSummary struct {
	ItemsCount int             `json:"items_count"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Items      []CartLine      `json:"items"`
}

// PaymentItem 客户端自带的下单行项（前端已持有购物车状态时的覆盖输入）
type PaymentItem struct {
	Name     string          `json:"name" binding:"required"`
	Quantity int             `json:"quantity" binding:"required,min=1"`
	Price    decimal.Decimal `json:"price" binding:"required"`
}

// ProcessPaymentDTO 支付请求DTO
type ProcessPaymentDTO struct {
	PaymentMode   string        `json:"payment_mode"`
	TransactionID string        `json:"transaction_id"`
	Items         []PaymentItem `json:"items"`
}
