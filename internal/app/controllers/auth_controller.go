// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/models/dto"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/services"
	"github.com/tanmayaurl/Skillsculpt2/internal/middleware"
	"github.com/tanmayaurl/Skillsculpt2/internal/pkg/apperrors"
)

// AuthController handles authentication related operations.
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login exchanges email/password for a bearer token and the account role.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.CodeInvalidCredentials})
		return
	}

	out, err := c.authService.Login(req.Email, req.Password)
	if err != nil {
		c.logger.Debug().Str("email", req.Email).Msg("Login rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, out)
}

// Me returns the role encoded in the caller's token.
func (c *AuthController) Me(ctx *gin.Context) {
	role := ctx.GetString(middleware.ContextRoleKey)
	ctx.JSON(http.StatusOK, gin.H{"role": role})
}
