package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tanmayaurl/Skillsculpt2/internal/pkg/apperrors"
)

// HandleAPIError maps service and store errors to the machine-readable wire
// codes. Anything outside the taxonomy is a bug and stays a request-scoped
// 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(404, gin.H{"error": apperrors.CodeStudentNotFound})
	case errors.Is(err, apperrors.ErrUniversityNotFound):
		c.JSON(404, gin.H{"error": apperrors.CodeUniversityNotFound})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, gin.H{"error": apperrors.CodeInvalidCredentials})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(401, gin.H{"error": apperrors.CodeUnauthorized})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, gin.H{"error": apperrors.CodeForbidden})
	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrTokenExpired):
		c.JSON(401, gin.H{"error": apperrors.CodeInvalidToken})
	default:
		// ErrBackendFailure and anything unrecognized.
		c.JSON(500, gin.H{"error": apperrors.CodeBackendFailure})
	}
}

// AbortWithAPIError writes the mapped error response and aborts the handler
// chain. Middleware must use this instead of HandleAPIError so downstream
// handlers do not run.
func AbortWithAPIError(c *gin.Context, err error) {
	HandleAPIError(c, err)
	c.Abort()
}
