package storage

import (
	"marketplace/internal/domain/entities"
	"marketplace/internal/domain/repositories"

	"github.com/jmoiron/sqlx"
)

// PostgresOrderRepository PostgreSQL订单仓库实现。
// 订单创建后只读，因此没有更新和删除方法。
type PostgresOrderRepository struct {
	DB *sqlx.DB
}

var _ repositories.OrderRepository = (*PostgresOrderRepository)(nil)

// NewPostgresOrderRepository 创建PostgreSQL订单仓库
func NewPostgresOrderRepository(db *sqlx.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		DB: db,
	}
}

// Create 在一个事务里写入订单头及其全部行项
func (r *PostgresOrderRepository) Create(order entities.Order, items []entities.OrderItem) (entities.Order, error) {
	tx, err := r.DB.Beginx()
	if err != nil {
		return entities.Order{}, err
	}
	defer tx.Rollback()

	orderQuery := `
		INSERT INTO orders (id, user_id, payment_mode, transaction_id, item_names, order_date)
		VALUES (:id, :user_id, :payment_mode, :transaction_id, :item_names, :order_date)
	`
	if _, err := tx.NamedExec(orderQuery, order); err != nil {
		return entities.Order{}, err
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_name, quantity, price)
		VALUES (:id, :order_id, :product_name, :quantity, :price)
	`
	for _, item := range items {
		if _, err := tx.NamedExec(itemQuery, item); err != nil {
			return entities.Order{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return entities.Order{}, err
	}

	return order, nil
}

// FindByUser 查找用户订单，按下单时间倒序
func (r *PostgresOrderRepository) FindByUser(userID string) ([]entities.Order, error) {
	orders := []entities.Order{}

	query := "SELECT * FROM orders WHERE user_id = $1 ORDER BY order_date DESC"
	if err := r.DB.Select(&orders, query, userID); err != nil {
		return nil, err
	}

	return orders, nil
}

// ListItems 列出订单行项
func (r *PostgresOrderRepository) ListItems(orderID string) ([]entities.OrderItem, error) {
	items := []entities.OrderItem{}

	query := "SELECT * FROM order_items WHERE order_id = $1"
	if err := r.DB.Select(&items, query, orderID); err != nil {
		return nil, err
	}

	return items, nil
}
