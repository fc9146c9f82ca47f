package services

import (
	"time"

	"marketplace/internal/domain/entities"
	"marketplace/internal/domain/repositories"
	"marketplace/internal/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService 用户服务
type UserService struct {
	repo   repositories.UserRepository
	logger logger.Logger
}

// NewUserService 创建用户服务
func NewUserService(repo repositories.UserRepository, logger logger.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

// Create 创建用户。密码在这里做bcrypt哈希。
func (s *UserService) Create(dto entities.CreateUserDTO) (entities.User, error) {
	if _, err := s.repo.FindByEmail(dto.Email); err == nil {
		return entities.User{}, ErrEmailExists
	}

	hashed, err := s.HashPassword(dto.Password)
	if err != nil {
		return entities.User{}, err
	}

	role := dto.Role
	if role == "" {
		role = entities.RoleCustomer
	}

	user := entities.User{
		ID:        uuid.New().String(),
		Name:      dto.Name,
		Email:     dto.Email,
		Password:  hashed,
		Role:      role,
		Status:    entities.UserStatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	return s.repo.Create(user)
}

// FindByEmail 通过邮箱查找用户
func (s *UserService) FindByEmail(email string) (entities.User, error) {
	return s.repo.FindByEmail(email)
}

// FindByID 通过ID查找用户
func (s *UserService) FindByID(id string) (entities.User, error) {
	return s.repo.FindByID(id)
}

// Authenticate 用户认证
func (s *UserService) Authenticate(email, password string) (entities.User, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return entities.User{}, ErrInvalidCredentials
	}

	if !s.VerifyPassword(user.Password, password) {
		return entities.User{}, ErrInvalidCredentials
	}

	if user.Status != entities.UserStatusActive {
		return entities.User{}, ErrAccountDisabled
	}

	return user, nil
}

// VerifyPassword 验证密码
func (s *UserService) VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// HashPassword 哈希密码
func (s *UserService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}
