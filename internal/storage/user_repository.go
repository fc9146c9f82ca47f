package storage

import (
	"database/sql"
	"errors"

	"marketplace/internal/domain/entities"
	"marketplace/internal/domain/repositories"

	"github.com/jmoiron/sqlx"
)

// PostgresUserRepository PostgreSQL用户仓库实现
type PostgresUserRepository struct {
	DB *sqlx.DB
}

var _ repositories.UserRepository = (*PostgresUserRepository)(nil)

// NewPostgresUserRepository 创建PostgreSQL用户仓库
func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{
		DB: db,
	}
}

// Create 创建用户
func (r *PostgresUserRepository) Create(user entities.User) (entities.User, error) {
	query := `
		INSERT INTO users (
			id, name, email, password_hash, role, status, created_at, updated_at
		) VALUES (
			:id, :name, :email, :password_hash, :role, :status, :created_at, :updated_at
		) RETURNING *
	`

	rows, err := r.DB.NamedQuery(query, user)
	if err != nil {
		return entities.User{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var result entities.User
		if err := rows.StructScan(&result); err != nil {
			return entities.User{}, err
		}
		return result, nil
	}

	return entities.User{}, errors.New("创建用户失败")
}

// FindByID 通过ID查找用户
func (r *PostgresUserRepository) FindByID(id string) (entities.User, error) {
	var user entities.User

	query := "SELECT * FROM users WHERE id = $1"
	if err := r.DB.Get(&user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return entities.User{}, repositories.ErrNotFound
		}
		return entities.User{}, err
	}

	return user, nil
}

// FindByEmail 通过邮箱查找用户
func (r *PostgresUserRepository) FindByEmail(email string) (entities.User, error) {
	var user entities.User

	query := "SELECT * FROM users WHERE email = $1"
	if err := r.DB.Get(&user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return entities.User{}, repositories.ErrNotFound
		}
		return entities.User{}, err
	}

	return user, nil
}
