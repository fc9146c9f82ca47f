package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"marketplace/internal/domain/entities"
	"marketplace/internal/domain/repositories"

	"github.com/jmoiron/sqlx"
)

// PostgresVendorRepository PostgreSQL商家仓库实现
type PostgresVendorRepository struct {
	DB *sqlx.DB
}

var _ repositories.VendorRepository = (*PostgresVendorRepository)(nil)

// NewPostgresVendorRepository 创建PostgreSQL商家仓库
func NewPostgresVendorRepository(db *sqlx.DB) *PostgresVendorRepository {
	return &PostgresVendorRepository{
		DB: db,
	}
}

// Create 创建商家资料
func (r *PostgresVendorRepository) Create(vendor entities.VendorProfile) (entities.VendorProfile, error) {
	query := `
		INSERT INTO vendor_profiles (
			id, user_id, shop_name, shop_description, address, business_type,
			gst_number, pan_number, pan_name, id_proof_key,
			approval_status, rejection_reason, is_blocked, blocked_reason,
			created_at, updated_at
		) VALUES (
			:id, :user_id, :shop_name, :shop_description, :address, :business_type,
			:gst_number, :pan_number, :pan_name, :id_proof_key,
			:approval_status, :rejection_reason, :is_blocked, :blocked_reason,
			:created_at, :updated_at
		) RETURNING *
	`

	rows, err := r.DB.NamedQuery(query, vendor)
	if err != nil {
		return entities.VendorProfile{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var result entities.VendorProfile
		if err := rows.StructScan(&result); err != nil {
			return entities.VendorProfile{}, err
		}
		return result, nil
	}

	return entities.VendorProfile{}, errors.New("创建商家资料失败")
}

// FindByID 通过ID查找商家
func (r *PostgresVendorRepository) FindByID(id string) (entities.VendorProfile, error) {
	var vendor entities.VendorProfile

	query := "SELECT * FROM vendor_profiles WHERE id = $1"
	if err := r.DB.Get(&vendor, query, id); err != nil {
		if err == sql.ErrNoRows {
			return entities.VendorProfile{}, repositories.ErrNotFound
		}
		return entities.VendorProfile{}, err
	}

	return vendor, nil
}

// FindByUserID 通过用户ID查找商家
func (r *PostgresVendorRepository) FindByUserID(userID string) (entities.VendorProfile, error) {
	var vendor entities.VendorProfile

	query := "SELECT * FROM vendor_profiles WHERE user_id = $1"
	if err := r.DB.Get(&vendor, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return entities.VendorProfile{}, repositories.ErrNotFound
		}
		return entities.VendorProfile{}, err
	}

	return vendor, nil
}

// FindAll 按条件查找商家
func (r *PostgresVendorRepository) FindAll(filter entities.VendorFilter) ([]entities.VendorProfile, error) {
	vendors := []entities.VendorProfile{}

	query := `
		SELECT v.* FROM vendor_profiles v
		JOIN users u ON u.id = v.user_id
		WHERE 1=1
	`
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND v.approval_status = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (v.shop_name ILIKE $%d OR u.email ILIKE $%d OR u.name ILIKE $%d)", n, n, n)
	}
	if filter.Blocked != nil {
		args = append(args, *filter.Blocked)
		query += fmt.Sprintf(" AND v.is_blocked = $%d", len(args))
	}

	query += " ORDER BY v.created_at DESC"

	if err := r.DB.Select(&vendors, query, args...); err != nil {
		return nil, err
	}

	return vendors, nil
}

// Update 更新商家资料
func (r *PostgresVendorRepository) Update(vendor entities.VendorProfile) (entities.VendorProfile, error) {
	query := `
		UPDATE vendor_profiles SET
			shop_name = :shop_name,
			shop_description = :shop_description,
			address = :address,
			business_type = :business_type,
			gst_number = :gst_number,
			pan_number = :pan_number,
			pan_name = :pan_name,
			id_proof_key = :id_proof_key,
			approval_status = :approval_status,
			rejection_reason = :rejection_reason,
			is_blocked = :is_blocked,
			blocked_reason = :blocked_reason,
			updated_at = :updated_at
		WHERE id = :id
		RETURNING *
	`

	rows, err := r.DB.NamedQuery(query, vendor)
	if err != nil {
		return entities.VendorProfile{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var result entities.VendorProfile
		if err := rows.StructScan(&result); err != nil {
			return entities.VendorProfile{}, err
		}
		return result, nil
	}

	return entities.VendorProfile{}, repositories.ErrNotFound
}

// CountAll 商家总数
func (r *PostgresVendorRepository) CountAll() (int, error) {
	var count int
	if err := r.DB.Get(&count, "SELECT COUNT(*) FROM vendor_profiles"); err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus 按审核状态统计商家数
func (r *PostgresVendorRepository) CountByStatus(status entities.ApprovalStatus) (int, error) {
	var count int
	if err := r.DB.Get(&count, "SELECT COUNT(*) FROM vendor_profiles WHERE approval_status = $1", status); err != nil {
		return 0, err
	}
	return count, nil
}

// CountBlocked 被封禁商家数
func (r *PostgresVendorRepository) CountBlocked() (int, error) {
	var count int
	if err := r.DB.Get(&count, "SELECT COUNT(*) FROM vendor_profiles WHERE is_blocked = TRUE"); err != nil {
		return 0, err
	}
	return count, nil
}
