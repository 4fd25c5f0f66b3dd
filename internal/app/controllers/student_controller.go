package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/models/dto"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/store"
	"github.com/tanmayaurl/Skillsculpt2/internal/middleware"
)

// StudentController handles student listing and registration.
type StudentController struct {
	store  store.Store
	logger zerolog.Logger
}

// NewStudentController creates a new StudentController.
func NewStudentController(st store.Store, logger zerolog.Logger) *StudentController {
	return &StudentController{store: st, logger: logger}
}

// ListStudents returns every student.
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.store.Students(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list students")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// CreateStudent registers a student. Payload validation is permissive: a
// malformed body is treated as an empty payload and fields default per the
// store contract.
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var payload dto.StudentPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		payload = dto.StudentPayload{}
	}

	student, err := c.store.AddStudent(ctx.Request.Context(), payload)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to add student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, student)
}
