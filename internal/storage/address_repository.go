package storage

import (
	"errors"

	"marketplace/internal/domain/entities"
	"marketplace/internal/domain/repositories"

	"github.com/jmoiron/sqlx"
)

// PostgresAddressRepository PostgreSQL收货地址仓库实现
type PostgresAddressRepository struct {
	DB *sqlx.DB
}

var _ repositories.AddressRepository = (*PostgresAddressRepository)(nil)

// NewPostgresAddressRepository 创建PostgreSQL收货地址仓库
func NewPostgresAddressRepository(db *sqlx.DB) *PostgresAddressRepository {
	return &PostgresAddressRepository{
		DB: db,
	}
}

// Create 新增收货地址
func (r *PostgresAddressRepository) Create(address entities.Address) (entities.Address, error) {
	query := `
		INSERT INTO addresses (id, user_id, name, phone, pincode, address, city, state, created_at)
		VALUES (:id, :user_id, :name, :phone, :pincode, :address, :city, :state, :created_at)
		RETURNING *
	`

	rows, err := r.DB.NamedQuery(query, address)
	if err != nil {
		return entities.Address{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var result entities.Address
		if err := rows.StructScan(&result); err != nil {
			return entities.Address{}, err
		}
		return result, nil
	}

	return entities.Address{}, errors.New("新增收货地址失败")
}

// FindByUser 列出用户的收货地址
func (r *PostgresAddressRepository) FindByUser(userID string) ([]entities.Address, error) {
	addresses := []entities.Address{}

	query := "SELECT * FROM addresses WHERE user_id = $1 ORDER BY created_at DESC"
	if err := r.DB.Select(&addresses, query, userID); err != nil {
		return nil, err
	}

	return addresses, nil
}

// Delete 删除用户的收货地址
func (r *PostgresAddressRepository) Delete(id, userID string) error {
	result, err := r.DB.Exec("DELETE FROM addresses WHERE id = $1 AND user_id = $2", id, userID)
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
