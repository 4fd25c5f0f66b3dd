package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/services"
	"github.com/tanmayaurl/Skillsculpt2/internal/middleware"
)

// MatchController handles job ranking for a student.
type MatchController struct {
	matchService services.MatchService
}

// NewMatchController creates a new MatchController.
func NewMatchController(matchService services.MatchService) *MatchController {
	return &MatchController{matchService: matchService}
}

// Match returns every job scored against the student, best first.
func (c *MatchController) Match(ctx *gin.Context) {
	studentID := ctx.Param("studentId")

	matches, err := c.matchService.MatchJobsForStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, matches)
}
