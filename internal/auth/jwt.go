package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// JWTService JWT服务
type JWTService struct {
	secretKey          string
	expiryHours        int
	refreshExpiryHours int
}

// NewJWTService 创建JWT服务
func NewJWTService(secretKey string, expiryHours, refreshExpiryHours int) *JWTService {
	return &JWTService{
		secretKey:          secretKey,
		expiryHours:        expiryHours,
		refreshExpiryHours: refreshExpiryHours,
	}
}

// Claims JWT声明
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenPair 访问令牌与刷新令牌
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func (s *JWTService) generate(userID, role string, expiry time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// GenerateTokenPair 生成访问令牌与刷新令牌
func (s *JWTService) GenerateTokenPair(userID, role string) (TokenPair, error) {
	access, err := s.generate(userID, role, time.Hour*time.Duration(s.expiryHours))
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := s.generate(userID, role, time.Hour*time.Duration(s.refreshExpiryHours))
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{Access: access, Refresh: refresh}, nil
}

// ValidateToken 验证JWT令牌
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("无效令牌")
}
