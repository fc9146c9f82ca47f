package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"marketplace/internal/domain/entities"
	"marketplace/internal/domain/repositories"

	"github.com/jmoiron/sqlx"
)

// PostgresProductRepository PostgreSQL商品仓库实现
type PostgresProductRepository struct {
	DB *sqlx.DB
}

var _ repositories.ProductRepository = (*PostgresProductRepository)(nil)

// NewPostgresProductRepository 创建PostgreSQL商品仓库
func NewPostgresProductRepository(db *sqlx.DB) *PostgresProductRepository {
	return &PostgresProductRepository{
		DB: db,
	}
}

// Create 创建商品
func (r *PostgresProductRepository) Create(product entities.Product) (entities.Product, error) {
	query := `
		INSERT INTO products (
			id, vendor_id, name, description, price, quantity, image_key,
			status, is_blocked, blocked_reason, created_at, updated_at
		) VALUES (
			:id, :vendor_id, :name, :description, :price, :quantity, :image_key,
			:status, :is_blocked, :blocked_reason, :created_at, :updated_at
		) RETURNING *
	`

	rows, err := r.DB.NamedQuery(query, product)
	if err != nil {
		return entities.Product{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var result entities.Product
		if err := rows.StructScan(&result); err != nil {
			return entities.Product{}, err
		}
		return result, nil
	}

	return entities.Product{}, errors.New("创建商品失败")
}

// FindByID 通过ID查找商品
func (r *PostgresProductRepository) FindByID(id string) (entities.Product, error) {
	var product entities.Product

	query := "SELECT * FROM products WHERE id = $1"
	if err := r.DB.Get(&product, query, id); err != nil {
		if err == sql.ErrNoRows {
			return entities.Product{}, repositories.ErrNotFound
		}
		return entities.Product{}, err
	}

	return product, nil
}

// FindByVendor 查找商家的全部商品
func (r *PostgresProductRepository) FindByVendor(vendorID string) ([]entities.Product, error) {
	products := []entities.Product{}

	query := "SELECT * FROM products WHERE vendor_id = $1 ORDER BY created_at DESC"
	if err := r.DB.Select(&products, query, vendorID); err != nil {
		return nil, err
	}

	return products, nil
}

// FindAll 管理端按条件查找商品
func (r *PostgresProductRepository) FindAll(filter entities.ProductFilter) ([]entities.Product, error) {
	products := []entities.Product{}

	query := "SELECT * FROM products WHERE 1=1"
	args := []interface{}{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", n, n)
	}
	if filter.VendorID != "" {
		args = append(args, filter.VendorID)
		query += fmt.Sprintf(" AND vendor_id = $%d", len(args))
	}
	if filter.Blocked != nil {
		args = append(args, *filter.Blocked)
		query += fmt.Sprintf(" AND is_blocked = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	if err := r.DB.Select(&products, query, args...); err != nil {
		return nil, err
	}

	return products, nil
}

// FindVisible 买家可见商品列表。可购买条件在查询时计算：
// 商品未封禁、商家审核通过且未封禁。
func (r *PostgresProductRepository) FindVisible(search string) ([]entities.Product, error) {
	products := []entities.Product{}

	query := `
		SELECT p.* FROM products p
		JOIN vendor_profiles v ON v.id = p.vendor_id
		WHERE p.is_blocked = FALSE
		  AND p.status = 'active'
		  AND v.approval_status = 'approved'
		  AND v.is_blocked = FALSE
	`
	args := []interface{}{}

	if search != "" {
		args = append(args, "%"+search+"%")
		query += " AND (p.name ILIKE $1 OR p.description ILIKE $1)"
	}

	query += " ORDER BY p.created_at DESC"

	if err := r.DB.Select(&products, query, args...); err != nil {
		return nil, err
	}

	return products, nil
}

// Update 更新商品
func (r *PostgresProductRepository) Update(product entities.Product) (entities.Product, error) {
	query := `
		UPDATE products SET
			name = :name,
			description = :description,
			price = :price,
			quantity = :quantity,
			image_key = :image_key,
			status = :status,
			is_blocked = :is_blocked,
			blocked_reason = :blocked_reason,
			updated_at = :updated_at
		WHERE id = :id
		RETURNING *
	`

	rows, err := r.DB.NamedQuery(query, product)
	if err != nil {
		return entities.Product{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var result entities.Product
		if err := rows.StructScan(&result); err != nil {
			return entities.Product{}, err
		}
		return result, nil
	}

	return entities.Product{}, repositories.ErrNotFound
}

// Delete 删除商品
func (r *PostgresProductRepository) Delete(id string) error {
	result, err := r.DB.Exec("DELETE FROM products WHERE id = $1", id)
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

// BlockByVendor 批量封禁商家的全部商品。封禁商家时的一次性级联更新。
func (r *PostgresProductRepository) BlockByVendor(vendorID string, reason string) (int64, error) {
	query := "UPDATE products SET is_blocked = TRUE, blocked_reason = $1, updated_at = NOW() WHERE vendor_id = $2"
	result, err := r.DB.Exec(query, reason, vendorID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// CountAll 商品总数
func (r *PostgresProductRepository) CountAll() (int, error) {
	var count int
	if err := r.DB.Get(&count, "SELECT COUNT(*) FROM products"); err != nil {
		return 0, err
	}
	return count, nil
}

// CountBlocked 被封禁商品数
func (r *PostgresProductRepository) CountBlocked() (int, error) {
	var count int
	if err := r.DB.Get(&count, "SELECT COUNT(*) FROM products WHERE is_blocked = TRUE"); err != nil {
		return 0, err
	}
	return count, nil
}
