package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"resto_admin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(roles ...string) *gin.Engine {
	engine := gin.New()
	group := engine.Group("/secure")
	group.Use(AuthMiddleware())
	if len(roles) > 0 {
		group.Use(RoleAuthMiddleware(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString("username")})
	})
	return engine
}

func get(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure/ping", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	rec := get(newProtectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	rec := get(newProtectedRouter(), "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	rec := get(newProtectedRouter(), "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	token, err := utils.GenerateAccessToken("admin", "admin")
	require.NoError(t, err)

	rec := get(newProtectedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin")
}

func TestRoleAuthMiddlewareForbidden(t *testing.T) {
	token, err := utils.GenerateAccessToken("someone", "viewer")
	require.NoError(t, err)

	rec := get(newProtectedRouter("admin"), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoleAuthMiddlewareAllowed(t *testing.T) {
	token, err := utils.GenerateAccessToken("admin", "admin")
	require.NoError(t, err)

	rec := get(newProtectedRouter("admin"), "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestIDMiddlewareSetsHeader(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString(utils.RequestIDKey)})
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDMiddlewareKeepsClientID(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "client-supplied-id")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, "client-supplied-id", rec.Header().Get(RequestIDHeader))
}
