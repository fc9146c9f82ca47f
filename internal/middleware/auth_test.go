package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	group := router.Group("/protected")
	group.Use(AuthMiddleware(testSecret))
	if len(roles) > 0 {
		group.Use(RoleMiddleware(roles...))
	}
	group.GET("", func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	return router
}

func token(t *testing.T, userID, role string) string {
	t.Helper()
	pair, err := auth.NewJWTService(testSecret, 1, 24).GenerateTokenPair(userID, role)
	require.NoError(t, err)
	return pair.Access
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token(t, "user-1", "customer"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "user-1", "customer"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestRoleMiddleware(t *testing.T) {
	router := newTestRouter("admin")

	// 普通用户被拒绝
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "user-1", "customer"))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 管理员放行
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "admin-1", "admin"))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
