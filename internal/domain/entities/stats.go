package entities

// DashboardStats 管理端首页统计
type DashboardStats struct {
	TotalVendors    int `json:"total_vendors"`
	PendingVendors  int `json:"pending_vendors"`
	ApprovedVendors int `json:"approved_vendors"`
	RejectedVendors int `json:"rejected_vendors"`
	BlockedVendors  int `json:"blocked_vendors"`
	TotalProducts   int `json:"total_products"`
	BlockedProducts int `json:"blocked_products"`
}
