package services

import (
	"testing"

	"marketplace/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testLogger())

	user, err := svc.Create(entities.CreateUserDTO{
		Name:     "张三",
		Email:    "zhangsan@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.RoleCustomer, user.Role)
	assert.Equal(t, entities.UserStatusActive, user.Status)
	// 密码以哈希形式存储
	assert.NotEqual(t, "secret123", user.Password)

	got, err := svc.Authenticate("zhangsan@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate("zhangsan@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testLogger())

	_, err := svc.Create(entities.CreateUserDTO{Name: "A", Email: "dup@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Create(entities.CreateUserDTO{Name: "B", Email: "dup@example.com", Password: "secret456"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUserAuthenticateDisabled(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testLogger())

	user, err := svc.Create(entities.CreateUserDTO{Name: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	user.Status = entities.UserStatusDisabled
	repo.users[user.ID] = user

	_, err = svc.Authenticate("a@example.com", "secret123")
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestUserCreateWithRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testLogger())

	user, err := svc.Create(entities.CreateUserDTO{
		Name:     "商家",
		Email:    "v@example.com",
		Password: "secret123",
		Role:     entities.RoleVendor,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.RoleVendor, user.Role)
}
