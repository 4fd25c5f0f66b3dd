package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/services"
	"github.com/tanmayaurl/Skillsculpt2/internal/middleware"
)

// ResumeController handles resume optimization advice.
type ResumeController struct {
	resumeService services.ResumeService
}

// NewResumeController creates a new ResumeController.
func NewResumeController(resumeService services.ResumeService) *ResumeController {
	return &ResumeController{resumeService: resumeService}
}

// Optimize returns improvement suggestions for the student's resume.
func (c *ResumeController) Optimize(ctx *gin.Context) {
	studentID := ctx.Param("studentId")

	advice, err := c.resumeService.OptimizeResume(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, advice)
}
