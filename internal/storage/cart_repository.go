package storage

import (
	"database/sql"
	"errors"
	"time"

	"marketplace/internal/domain/entities"
	"marketplace/internal/domain/repositories"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// PostgresCartRepository PostgreSQL购物车仓库实现
type PostgresCartRepository struct {
	DB *sqlx.DB
}

var _ repositories.CartRepository = (*PostgresCartRepository)(nil)

// NewPostgresCartRepository 创建PostgreSQL购物车仓库
func NewPostgresCartRepository(db *sqlx.DB) *PostgresCartRepository {
	return &PostgresCartRepository{
		DB: db,
	}
}

// GetOrCreate 获取用户购物车，不存在则创建。
// 同一用户的并发首次访问之间没有加锁，依赖 user_id 唯一约束兜底。
func (r *PostgresCartRepository) GetOrCreate(userID string) (entities.Cart, error) {
	var cart entities.Cart

	err := r.DB.Get(&cart, "SELECT * FROM carts WHERE user_id = $1", userID)
	if err == nil {
		return cart, nil
	}
	if err != sql.ErrNoRows {
		return entities.Cart{}, err
	}

	cart = entities.Cart{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	query := `
		INSERT INTO carts (id, user_id, created_at, updated_at)
		VALUES (:id, :user_id, :created_at, :updated_at)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = carts.updated_at
		RETURNING *
	`

	rows, err := r.DB.NamedQuery(query, cart)
	if err != nil {
		return entities.Cart{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var result entities.Cart
		if err := rows.StructScan(&result); err != nil {
			return entities.Cart{}, err
		}
		return result, nil
	}

	return entities.Cart{}, errors.New("创建购物车失败")
}

// ListItems 列出购物车行项
func (r *PostgresCartRepository) ListItems(cartID string) ([]entities.CartItem, error) {
	items := []entities.CartItem{}

	query := "SELECT * FROM cart_items WHERE cart_id = $1 ORDER BY created_at"
	if err := r.DB.Select(&items, query, cartID); err != nil {
		return nil, err
	}

	return items, nil
}

// FindItem 查找购物车中某商品的行项
func (r *PostgresCartRepository) FindItem(cartID, productID string) (entities.CartItem, error) {
	var item entities.CartItem

	query := "SELECT * FROM cart_items WHERE cart_id = $1 AND product_id = $2"
	if err := r.DB.Get(&item, query, cartID, productID); err != nil {
		if err == sql.ErrNoRows {
			return entities.CartItem{}, repositories.ErrNotFound
		}
		return entities.CartItem{}, err
	}

	return item, nil
}

// AddItem 新增行项
func (r *PostgresCartRepository) AddItem(item entities.CartItem) (entities.CartItem, error) {
	query := `
		INSERT INTO cart_items (id, cart_id, product_id, quantity, created_at, updated_at)
		VALUES (:id, :cart_id, :product_id, :quantity, :created_at, :updated_at)
		RETURNING *
	`

	rows, err := r.DB.NamedQuery(query, item)
	if err != nil {
		return entities.CartItem{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var result entities.CartItem
		if err := rows.StructScan(&result); err != nil {
			return entities.CartItem{}, err
		}
		return result, nil
	}

	return entities.CartItem{}, errors.New("加入购物车失败")
}

// UpdateItemQuantity 修改行项数量
func (r *PostgresCartRepository) UpdateItemQuantity(itemID string, quantity int) error {
	query := "UPDATE cart_items SET quantity = $1, updated_at = NOW() WHERE id = $2"
	result, err := r.DB.Exec(query, quantity, itemID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repositories.ErrNotFound
	}

	return nil
}

// RemoveItem 删除行项
func (r *PostgresCartRepository) RemoveItem(cartID, productID string) error {
	query := "DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2"
	result, err := r.DB.Exec(query, cartID, productID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repositories.ErrNotFound
	}

	return nil
}

// ClearItems 清空购物车行项
func (r *PostgresCartRepository) ClearItems(cartID string) error {
	_, err := r.DB.Exec("DELETE FROM cart_items WHERE cart_id = $1", cartID)
	return err
}
