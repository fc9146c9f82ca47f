package entities

import (
	"time"

	"github.com/google/uuid"
)

// Address 收货地址实体
type Address struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Phone     string    `json:"phone" db:"phone"`
	Pincode   string    `json:"pincode" db:"pincode"`
	Address   string    `json:"address" db:"address"`
	City      string    `json:"city" db:"city"`
	State     string    `json:"state" db:"state"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateAddressDTO 新增收货地址DTO
type CreateAddressDTO struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required,min=10,max=15"`
	Pincode string `json:"pincode" binding:"required,min=6,max=6"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
}
