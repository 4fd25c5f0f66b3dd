package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/models"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/models/dto"
	"github.com/tanmayaurl/Skillsculpt2/internal/pkg/apperrors"
)

func suggestionTypes(advice *dto.ResumeAdvice) []string {
	types := make([]string, 0, len(advice.Suggestions))
	for _, s := range advice.Suggestions {
		types = append(types, s.Type)
	}
	return types
}

func TestOptimizeResumeAllRulesTrigger(t *testing.T) {
	st := &stubStore{
		students: []*models.Student{
			{
				ID:           "1",
				Name:         "Asha",
				Skills:       []string{},
				Achievements: []string{"Led club events"},
				ResumeText:   "",
			},
		},
		jobs: []*models.Job{
			{ID: "1", RequiredSkills: []string{"Java", "Spring", "SQL"}},
		},
	}
	svc := NewResumeService(st)

	advice, err := svc.OptimizeResume(context.Background(), "1")
	require.NoError(t, err)

	// Rules fire in a fixed order.
	assert.Equal(t, []string{"skills", "branding", "quantify", "keywords"}, suggestionTypes(advice))
	assert.Equal(t, []string{"java", "spring", "sql"}, advice.Suggestions[0].Items)
	assert.Equal(t, []string{"java", "spring", "sql"}, advice.Suggestions[3].Items)
}

func TestOptimizeResumeNoRulesTrigger(t *testing.T) {
	st := &stubStore{
		students: []*models.Student{
			{
				ID:           "1",
				Name:         "Rahul",
				Skills:       []string{"Java", "Spring", "SQL"},
				Achievements: []string{"Reduced latency by 30%"},
				ResumeText:   "Rahul. Java, Spring and SQL backend work.",
			},
		},
		jobs: []*models.Job{
			{ID: "1", RequiredSkills: []string{"Java", "Spring", "SQL"}},
		},
	}
	svc := NewResumeService(st)

	advice, err := svc.OptimizeResume(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, advice.Suggestions)
	assert.NotNil(t, advice.Suggestions)
}

func TestOptimizeResumeBrandingRule(t *testing.T) {
	st := &stubStore{
		students: []*models.Student{
			{
				ID:           "1",
				Name:         "Asha",
				Skills:       []string{"Java", "Spring", "SQL"},
				Achievements: []string{"Won 2 hackathons"},
				ResumeText:   "Java, Spring and SQL experience.",
			},
		},
		jobs: []*models.Job{
			{ID: "1", RequiredSkills: []string{"Java", "Spring", "SQL"}},
		},
	}
	svc := NewResumeService(st)

	advice, err := svc.OptimizeResume(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"branding"}, suggestionTypes(advice))
	assert.Empty(t, advice.Suggestions[0].Items)
}

func TestOptimizeResumeQuantifyRule(t *testing.T) {
	st := &stubStore{
		students: []*models.Student{
			{
				ID:           "1",
				Name:         "Asha",
				Skills:       []string{"Java", "Spring", "SQL"},
				Achievements: []string{"Organized a workshop"},
				ResumeText:   "Asha. Java, Spring and SQL experience.",
			},
		},
		jobs: []*models.Job{
			{ID: "1", RequiredSkills: []string{"Java", "Spring", "SQL"}},
		},
	}
	svc := NewResumeService(st)

	advice, err := svc.OptimizeResume(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"quantify"}, suggestionTypes(advice))
}

func TestOptimizeResumeSuggestionItemsCapped(t *testing.T) {
	skills := make([]string, 0, 15)
	for i := 0; i < 15; i++ {
		skills = append(skills, fmt.Sprintf("skill%d", i))
	}
	st := &stubStore{
		students: []*models.Student{
			{ID: "1", Name: "Asha", Achievements: []string{"2 awards"}, ResumeText: "Asha"},
		},
		jobs: []*models.Job{
			{ID: "1", RequiredSkills: skills},
		},
	}
	svc := NewResumeService(st)

	advice, err := svc.OptimizeResume(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, []string{"skills", "keywords"}, suggestionTypes(advice))
	assert.Len(t, advice.Suggestions[0].Items, 10)
	assert.Len(t, advice.Suggestions[1].Items, 10)
	assert.Equal(t, "skill0", advice.Suggestions[0].Items[0])
}

func TestOptimizeResumeDedupesRequiredSkills(t *testing.T) {
	st := &stubStore{
		students: []*models.Student{
			{ID: "1", Name: "Asha", Achievements: []string{"1st place"}, ResumeText: "Asha"},
		},
		jobs: []*models.Job{
			{ID: "1", RequiredSkills: []string{"Java", "SQL"}},
			{ID: "2", RequiredSkills: []string{"java", "Python"}},
		},
	}
	svc := NewResumeService(st)

	advice, err := svc.OptimizeResume(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, []string{"skills", "keywords"}, suggestionTypes(advice))
	assert.Equal(t, []string{"java", "sql", "python"}, advice.Suggestions[0].Items)
}

func TestOptimizeResumeUnknownStudent(t *testing.T) {
	svc := NewResumeService(&stubStore{})

	_, err := svc.OptimizeResume(context.Background(), "404")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
