package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmayaurl/Skillsculpt2/internal/pkg/auth"
)

func newGuardedRouter(t *testing.T, jwtService *auth.JWTService, requiredRole string) *gin.Engine {
	t.Helper()
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	handlers := []gin.HandlerFunc{m.JWTAuth()}
	if requiredRole != "" {
		handlers = append(handlers, m.RoleRequired(requiredRole))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString(ContextRoleKey)})
	})
	router.GET("/guarded", handlers...)
	return router
}

func guardedRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test_secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "skillsculpt-test",
	})
	router := newGuardedRouter(t, jwtService, "")

	t.Run("valid token passes claims through", func(t *testing.T) {
		token, err := jwtService.GenerateToken("u1", "student")
		require.NoError(t, err)

		w := guardedRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"role":"student"}`, w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		w := guardedRequest(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
	})

	t.Run("non-bearer scheme", func(t *testing.T) {
		w := guardedRequest(router, "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
	})

	t.Run("garbage token", func(t *testing.T) {
		w := guardedRequest(router, "Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"invalid_token"}`, w.Body.String())
	})

	t.Run("expired token", func(t *testing.T) {
		expiredMinter := auth.NewJWTService(auth.JWTConfig{
			SecretKey:      "test_secret",
			AccessTokenExp: -time.Minute,
			TokenIssuer:    "skillsculpt-test",
		})
		token, err := expiredMinter.GenerateToken("u1", "student")
		require.NoError(t, err)

		w := guardedRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"invalid_token"}`, w.Body.String())
	})
}

func TestRoleRequired(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test_secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "skillsculpt-test",
	})
	router := newGuardedRouter(t, jwtService, "employer")

	t.Run("matching role", func(t *testing.T) {
		token, err := jwtService.GenerateToken("u2", "employer")
		require.NoError(t, err)

		w := guardedRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("role mismatch", func(t *testing.T) {
		token, err := jwtService.GenerateToken("u1", "student")
		require.NoError(t, err)

		w := guardedRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"forbidden"}`, w.Body.String())
	})
}
