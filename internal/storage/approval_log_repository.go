package storage

import (
	"errors"

	"marketplace/internal/domain/entities"
	"marketplace/internal/domain/repositories"

	"github.com/jmoiron/sqlx"
)

// PostgresApprovalLogRepository PostgreSQL审核日志仓库实现。
// 日志只追加：这里刻意不提供 UPDATE / DELETE。
type PostgresApprovalLogRepository struct {
	DB *sqlx.DB
}

var _ repositories.ApprovalLogRepository = (*PostgresApprovalLogRepository)(nil)

// NewPostgresApprovalLogRepository 创建PostgreSQL审核日志仓库
func NewPostgresApprovalLogRepository(db *sqlx.DB) *PostgresApprovalLogRepository {
	return &PostgresApprovalLogRepository{
		DB: db,
	}
}

// CreateVendorLog 追加商家审核日志
func (r *PostgresApprovalLogRepository) CreateVendorLog(log entities.VendorApprovalLog) (entities.VendorApprovalLog, error) {
	query := `
		INSERT INTO vendor_approval_logs (id, vendor_id, admin_user_id, action, reason, timestamp)
		VALUES (:id, :vendor_id, :admin_user_id, :action, :reason, :timestamp)
		RETURNING *
	`

	rows, err := r.DB.NamedQuery(query, log)
	if err != nil {
		return entities.VendorApprovalLog{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var result entities.VendorApprovalLog
		if err := rows.StructScan(&result); err != nil {
			return entities.VendorApprovalLog{}, err
		}
		return result, nil
	}

	return entities.VendorApprovalLog{}, errors.New("写入审核日志失败")
}

// ListVendorLogs 列出商家的审核日志，按时间倒序
func (r *PostgresApprovalLogRepository) ListVendorLogs(vendorID string) ([]entities.VendorApprovalLog, error) {
	logs := []entities.VendorApprovalLog{}

	query := "SELECT * FROM vendor_approval_logs WHERE vendor_id = $1 ORDER BY timestamp DESC"
	if err := r.DB.Select(&logs, query, vendorID); err != nil {
		return nil, err
	}

	return logs, nil
}

// CreateProductLog 追加商品封禁日志
func (r *PostgresApprovalLogRepository) CreateProductLog(log entities.ProductApprovalLog) (entities.ProductApprovalLog, error) {
	query := `
		INSERT INTO product_approval_logs (id, product_id, admin_user_id, action, reason, timestamp)
		VALUES (:id, :product_id, :admin_user_id, :action, :reason, :timestamp)
		RETURNING *
	`

	rows, err := r.DB.NamedQuery(query, log)
	if err != nil {
		return entities.ProductApprovalLog{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var result entities.ProductApprovalLog
		if err := rows.StructScan(&result); err != nil {
			return entities.ProductApprovalLog{}, err
		}
		return result, nil
	}

	return entities.ProductApprovalLog{}, errors.New("写入商品封禁日志失败")
}

// ListProductLogs 列出商品的封禁日志，按时间倒序
func (r *PostgresApprovalLogRepository) ListProductLogs(productID string) ([]entities.ProductApprovalLog, error) {
	logs := []entities.ProductApprovalLog{}

	query := "SELECT * FROM product_approval_logs WHERE product_id = $1 ORDER BY timestamp DESC"
	if err := r.DB.Select(&logs, query, productID); err != nil {
		return nil, err
	}

	return logs, nil
}
