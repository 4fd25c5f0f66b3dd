package services

import (
	"context"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/models"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/models/dto"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/store"
	"github.com/tanmayaurl/Skillsculpt2/internal/pkg/apperrors"
)

// Weights of the composite match score.
const (
	weightSkills     = 0.6
	weightExperience = 0.2
	weightResume     = 0.15
	weightDescMatch  = 0.05
)

// MatchService ranks jobs for a student.
type MatchService interface {
	MatchJobsForStudent(ctx context.Context, studentID string) ([]dto.JobMatch, error)
}

type matchServiceImpl struct {
	store store.Store
}

// NewMatchService creates a new match service instance.
func NewMatchService(st store.Store) MatchService {
	return &matchServiceImpl{store: st}
}

// MatchJobsForStudent scores every job against the student and returns them
// ordered by descending score. Equal scores keep the store's job order.
func (s *matchServiceImpl) MatchJobsForStudent(ctx context.Context, studentID string) ([]dto.JobMatch, error) {
	student, err := findStudent(ctx, s.store, studentID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.store.Jobs(ctx)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, len(jobs))
	matches := make([]dto.JobMatch, len(jobs))
	for i, job := range jobs {
		scores[i] = scoreJobForStudent(student, job)
		matches[i] = dto.JobMatch{Job: job, Score: Round3(scores[i])}
	}

	sortByScore(matches, scores)
	return matches, nil
}

// scoreJobForStudent computes the unrounded composite score.
func scoreJobForStudent(student *models.Student, job *models.Job) float64 {
	skillScore := SetSimilarity(student.Skills, job.RequiredSkills)
	expScore := ExperienceFit(student.ExperienceYears, job.MinExperienceYears)

	resumeScore := 0.0
	if TextContainsAll(student.ResumeText, job.RequiredSkills) {
		resumeScore = 1
	}

	descScore := 0.0
	if TextContainsAll(job.Description, student.Skills) {
		descScore = 0.5
	}

	return skillScore*weightSkills +
		expScore*weightExperience +
		resumeScore*weightResume +
		descScore*weightDescMatch
}

// findStudent resolves a student by id or reports ErrStudentNotFound.
func findStudent(ctx context.Context, st store.Store, id string) (*models.Student, error) {
	students, err := st.Students(ctx)
	if err != nil {
		return nil, err
	}
	for _, student := range students {
		if student.ID == id {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}
