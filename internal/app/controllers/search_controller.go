package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/services"
	"github.com/tanmayaurl/Skillsculpt2/internal/middleware"
)

// SearchController handles job and candidate search.
type SearchController struct {
	searchService services.SearchService
}

// NewSearchController creates a new SearchController.
func NewSearchController(searchService services.SearchService) *SearchController {
	return &SearchController{searchService: searchService}
}

// SearchJobs filters and ranks job postings by the query parameters
// skills, type, location and minExperienceYears.
func (c *SearchController) SearchJobs(ctx *gin.Context) {
	query := services.JobSearchQuery{
		Skills:             splitSkills(ctx.Query("skills")),
		Type:               ctx.Query("type"),
		Location:           ctx.Query("location"),
		MinExperienceYears: parseOptionalFloat(ctx.Query("minExperienceYears")),
	}

	results, err := c.searchService.SearchJobs(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, results)
}

// SearchCandidates filters and ranks students by the query parameters
// skills, universityId and minExperienceYears.
func (c *SearchController) SearchCandidates(ctx *gin.Context) {
	query := services.CandidateSearchQuery{
		Skills:             splitSkills(ctx.Query("skills")),
		UniversityID:       ctx.Query("universityId"),
		MinExperienceYears: parseOptionalFloat(ctx.Query("minExperienceYears")),
	}

	results, err := c.searchService.SearchCandidates(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, results)
}

// splitSkills parses the comma-separated skills parameter, trimming entries
// and dropping empties.
func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

// parseOptionalFloat coerces a numeric query parameter; an absent parameter
// yields nil and a non-numeric one yields 0.
func parseOptionalFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		value = 0
	}
	return &value
}
