package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/services"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/store"
	"github.com/tanmayaurl/Skillsculpt2/internal/middleware"
)

// UniversityController handles university listing and dashboard insights.
type UniversityController struct {
	store           store.Store
	insightsService services.InsightsService
	logger          zerolog.Logger
}

// NewUniversityController creates a new UniversityController.
func NewUniversityController(st store.Store, insightsService services.InsightsService, logger zerolog.Logger) *UniversityController {
	return &UniversityController{
		store:           st,
		insightsService: insightsService,
		logger:          logger,
	}
}

// ListUniversities returns every registered university.
func (c *UniversityController) ListUniversities(ctx *gin.Context) {
	universities, err := c.store.Universities(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list universities")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, universities)
}

// Insights returns the skill supply/demand dashboard for one university.
func (c *UniversityController) Insights(ctx *gin.Context) {
	universityID := ctx.Param("universityId")

	insights, err := c.insightsService.UniversityInsights(ctx.Request.Context(), universityID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, insights)
}
