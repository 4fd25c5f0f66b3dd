package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/controllers"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/models"
	"github.com/tanmayaurl/Skillsculpt2/internal/middleware"
)

// SetupRouter configures all application routes. The surface is mounted at
// the root so the browser UI can keep its paths.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	jobController *controllers.JobController,
	universityController *controllers.UniversityController,
	matchController *controllers.MatchController,
	resumeController *controllers.ResumeController,
	searchController *controllers.SearchController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// Token introspection (any authenticated role)
	router.GET("/me", authMiddleware.JWTAuth(), authController.Me)

	// --- Public entity routes ---
	router.GET("/students", studentController.ListStudents)
	router.POST("/students", studentController.CreateStudent)
	router.GET("/jobs", jobController.ListJobs)
	router.POST("/jobs", jobController.CreateJob)
	router.GET("/universities", universityController.ListUniversities)

	// --- Role-protected write routes ---
	secure := router.Group("/secure")
	secure.Use(authMiddleware.JWTAuth())
	{
		secure.POST("/students", authMiddleware.RoleRequired(models.RoleStudent), studentController.CreateStudent)
		secure.POST("/jobs", authMiddleware.RoleRequired(models.RoleEmployer), jobController.CreateJob)
	}

	// --- Ranking and analytics routes ---
	router.GET("/match/:studentId", matchController.Match)
	router.GET("/resume/optimize/:studentId", resumeController.Optimize)
	router.GET("/dashboard/university/:universityId/insights", universityController.Insights)
	router.GET("/search", searchController.SearchJobs)
	router.GET("/candidates/search", searchController.SearchCandidates)

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
