package repositories

import (
	"marketplace/internal/domain/entities"
)

// ApprovalLogRepository 审核日志仓库接口。只追加：没有更新和删除方法。
type ApprovalLogRepository interface {
	// CreateVendorLog 追加商家审核日志
	CreateVendorLog(log entities.VendorApprovalLog) (entities.VendorApprovalLog, error)

	// ListVendorLogs 列出商家的审核日志，按时间倒序
	ListVendorLogs(vendorID string) ([]entities.VendorApprovalLog, error)

	// CreateProductLog 追加商品封禁日志
	CreateProductLog(log entities.ProductApprovalLog) (entities.ProductApprovalLog, error)

	// ListProductLogs 列出商品的封禁日志，按时间倒序
	ListProductLogs(productID string) ([]entities.ProductApprovalLog, error)
}
