package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tanmayaurl/Skillsculpt2/internal/pkg/apperrors"
	"github.com/tanmayaurl/Skillsculpt2/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	ContextSubjectKey = "subjectId"
	ContextRoleKey    = "role"
)

// AuthMiddleware guards routes with bearer-token authentication and flat
// role checks.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the Authorization bearer token. A missing or non-bearer
// header yields 401 unauthorized; a bad or expired token yields 401
// invalid_token.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil || tokenString == "" {
			AbortWithAPIError(c, apperrors.ErrUnauthorized)
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				AbortWithAPIError(c, apperrors.ErrTokenExpired)
			} else {
				AbortWithAPIError(c, apperrors.ErrTokenInvalid)
			}
			return
		}

		c.Set(ContextSubjectKey, claims.Subject)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// RoleRequired rejects authenticated requests whose token role does not
// match. JWTAuth must run first.
func (m *AuthMiddleware) RoleRequired(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRoleKey)
		if !exists {
			AbortWithAPIError(c, apperrors.ErrUnauthorized)
			return
		}

		roleStr, ok := role.(string)
		if !ok || roleStr != requiredRole {
			AbortWithAPIError(c, apperrors.ErrPermissionDenied)
			return
		}

		c.Next()
	}
}
