// Package store holds the record store contract and its two interchangeable
// backends: an embedded file-snapshot store and a PostgreSQL store. The
// backend is chosen once at startup; callers only ever see the Store
// interface.
package store

import (
	"context"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/models"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/models/dto"
)

// Store is the record store contract shared by both backends. The store is
// append-only: entities are never mutated or deleted after creation, and a
// successful add has already been committed (snapshot rewrite or row insert).
type Store interface {
	AddUniversity(ctx context.Context, name string) (*models.University, error)
	AddStudent(ctx context.Context, payload dto.StudentPayload) (*models.Student, error)
	AddJob(ctx context.Context, payload dto.JobPayload) (*models.Job, error)
	Universities(ctx context.Context) ([]*models.University, error)
	Students(ctx context.Context) ([]*models.Student, error)
	Jobs(ctx context.Context) ([]*models.Job, error)
}

// newStudent normalizes a payload into a Student with the given id. Empty
// optional fields become empty strings or empty (non-nil) slices.
func newStudent(id string, p dto.StudentPayload) *models.Student {
	s := &models.Student{
		ID:              id,
		Name:            string(p.Name),
		Email:           string(p.Email),
		Skills:          normalizeList(p.Skills),
		Certifications:  normalizeList(p.Certifications),
		Achievements:    normalizeList(p.Achievements),
		ExperienceYears: float64(p.ExperienceYears),
		ResumeText:      string(p.ResumeText),
	}
	if p.UniversityID != "" {
		uid := string(p.UniversityID)
		s.UniversityID = &uid
	}
	return s
}

// newJob normalizes a payload into a Job with the given id. The type defaults
// to "job" when absent.
func newJob(id string, p dto.JobPayload) *models.Job {
	jobType := string(p.Type)
	if jobType == "" {
		jobType = models.JobTypeJob
	}
	return &models.Job{
		ID:                 id,
		Title:              string(p.Title),
		Company:            string(p.Company),
		RequiredSkills:     normalizeList(p.RequiredSkills),
		MinExperienceYears: float64(p.MinExperienceYears),
		Description:        string(p.Description),
		Type:               jobType,
		Location:           string(p.Location),
	}
}

// normalizeList guarantees a non-nil slice so entities serialize as [] rather
// than null.
func normalizeList(l dto.StringList) []string {
	if l == nil {
		return []string{}
	}
	return []string(l)
}
