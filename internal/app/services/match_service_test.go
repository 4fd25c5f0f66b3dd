package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/models"
	"github.com/tanmayaurl/Skillsculpt2/internal/pkg/apperrors"
)

func TestMatchJobsForStudent(t *testing.T) {
	st := &stubStore{
		students: []*models.Student{
			{
				ID:              "1",
				Name:            "Asha",
				Skills:          []string{"Java", "Spring", "SQL"},
				ExperienceYears: 2,
				ResumeText:      "Java developer with Spring and SQL experience",
			},
		},
		jobs: []*models.Job{
			{
				ID:             "1",
				Title:          "Backend Engineer",
				RequiredSkills: []string{"Java", "Spring", "SQL"},
				Description:    "Work on Java and Spring services backed by SQL",
			},
			{
				ID:             "2",
				Title:          "Frontend Engineer",
				RequiredSkills: []string{"React", "CSS"},
				Description:    "Build UIs",
			},
		},
	}
	svc := NewMatchService(st)

	t.Run("perfect match scores 0.975", func(t *testing.T) {
		matches, err := svc.MatchJobsForStudent(context.Background(), "1")
		require.NoError(t, err)
		require.Len(t, matches, 2)

		// skills 0.6*1 + experience 0.2*1 + resume 0.15*1 + description 0.05*0.5
		assert.Equal(t, "1", matches[0].Job.ID)
		assert.Equal(t, 0.975, matches[0].Score)
	})

	t.Run("results ordered by descending score", func(t *testing.T) {
		matches, err := svc.MatchJobsForStudent(context.Background(), "1")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, matches[0].Score, matches[1].Score)
	})

	t.Run("unknown student reports not found", func(t *testing.T) {
		_, err := svc.MatchJobsForStudent(context.Background(), "999")
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})
}

func TestMatchJobsForStudentStableOnTies(t *testing.T) {
	st := &stubStore{
		students: []*models.Student{
			{ID: "1", Name: "Tie", Skills: []string{"Go"}, ExperienceYears: 5},
		},
		jobs: []*models.Job{
			{ID: "a", Title: "First", RequiredSkills: []string{"Rust"}},
			{ID: "b", Title: "Second", RequiredSkills: []string{"Rust"}},
			{ID: "c", Title: "Third", RequiredSkills: []string{"Rust"}},
		},
	}
	svc := NewMatchService(st)

	matches, err := svc.MatchJobsForStudent(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, matches, 3)

	// All jobs tie; store order must be preserved.
	assert.Equal(t, "a", matches[0].Job.ID)
	assert.Equal(t, "b", matches[1].Job.ID)
	assert.Equal(t, "c", matches[2].Job.ID)
}

func TestMatchScoreRoundedForPresentation(t *testing.T) {
	st := &stubStore{
		students: []*models.Student{
			{ID: "1", Name: "P", Skills: []string{"go", "sql"}, ExperienceYears: 1},
		},
		jobs: []*models.Job{
			{ID: "1", RequiredSkills: []string{"go", "python", "sql"}, MinExperienceYears: 3},
		},
	}
	svc := NewMatchService(st)

	matches, err := svc.MatchJobsForStudent(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	// 0.6*(2/3) + 0.2*(1/3) = 0.4666... -> 0.467
	assert.Equal(t, 0.467, matches[0].Score)
}
