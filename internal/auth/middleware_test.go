package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func mintToken(t *testing.T, subdomain, role, secret string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       "admin@example.com",
		"tenant_id": "8c7a4a1e-0000-0000-0000-000000000000",
		"subdomain": subdomain,
		"role":      role,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/settings/:tenantId", RequireTenantAdmin(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subdomain": c.GetString("subdomain")})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/settings/aminas-fabrics", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireTenantAdmin(t *testing.T) {
	router := newTestRouter()

	t.Run("valid token passes", func(t *testing.T) {
		w := doRequest(router, mintToken(t, "aminas-fabrics", "admin", testSecret, time.Hour))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := doRequest(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		w := doRequest(router, mintToken(t, "aminas-fabrics", "admin", "other-secret", time.Hour))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		w := doRequest(router, mintToken(t, "aminas-fabrics", "admin", testSecret, -time.Minute))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token for another tenant", func(t *testing.T) {
		w := doRequest(router, mintToken(t, "other-shop", "admin", testSecret, time.Hour))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("non-admin role", func(t *testing.T) {
		w := doRequest(router, mintToken(t, "aminas-fabrics", "staff", testSecret, time.Hour))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
