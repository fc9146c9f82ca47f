package storage

import (
	"fmt"

	"marketplace/internal/config"
	"marketplace/internal/domain/repositories"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Repositories 所有仓库的集合
type Repositories struct {
	db                    *sqlx.DB
	UserRepository        repositories.UserRepository
	VendorRepository      repositories.VendorRepository
	ProductRepository     repositories.ProductRepository
	CartRepository        repositories.CartRepository
	OrderRepository       repositories.OrderRepository
	ApprovalLogRepository repositories.ApprovalLogRepository
	AddressRepository     repositories.AddressRepository
}

// NewDBConnection 创建数据库连接
func NewDBConnection(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	return sqlx.Connect("postgres", psqlInfo)
}

// NewRepositories 创建存储库集合
func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		db:                    db,
		UserRepository:        NewPostgresUserRepository(db),
		VendorRepository:      NewPostgresVendorRepository(db),
		ProductRepository:     NewPostgresProductRepository(db),
		CartRepository:        NewPostgresCartRepository(db),
		OrderRepository:       NewPostgresOrderRepository(db),
		ApprovalLogRepository: NewPostgresApprovalLogRepository(db),
		AddressRepository:     NewPostgresAddressRepository(db),
	}
}

// Close 关闭数据库连接
func (r *Repositories) Close() error {
	return r.db.Close()
}
