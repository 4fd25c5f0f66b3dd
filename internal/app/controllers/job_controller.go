package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/models/dto"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/store"
	"github.com/tanmayaurl/Skillsculpt2/internal/middleware"
)

// JobController handles job listing and posting.
type JobController struct {
	store  store.Store
	logger zerolog.Logger
}

// NewJobController creates a new JobController.
func NewJobController(st store.Store, logger zerolog.Logger) *JobController {
	return &JobController{store: st, logger: logger}
}

// ListJobs returns every job posting.
func (c *JobController) ListJobs(ctx *gin.Context) {
	jobs, err := c.store.Jobs(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list jobs")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, jobs)
}

// CreateJob posts a job. A malformed body is treated as an empty payload.
func (c *JobController) CreateJob(ctx *gin.Context) {
	var payload dto.JobPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		payload = dto.JobPayload{}
	}

	job, err := c.store.AddJob(ctx.Request.Context(), payload)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to add job")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, job)
}
