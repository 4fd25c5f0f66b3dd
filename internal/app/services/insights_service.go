package services

import (
	"context"
	"sort"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/models"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/models/dto"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/store"
	"github.com/tanmayaurl/Skillsculpt2/internal/pkg/apperrors"
)

// maxSkillGaps caps the gap table returned to dashboards.
const maxSkillGaps = 10

// InsightsService computes skill supply/demand gaps for a university's
// student cohort.
type InsightsService interface {
	UniversityInsights(ctx context.Context, universityID string) (*dto.UniversityInsights, error)
}

type insightsServiceImpl struct {
	store store.Store
}

// NewInsightsService creates a new insights service instance.
func NewInsightsService(st store.Store) InsightsService {
	return &insightsServiceImpl{store: st}
}

// UniversityInsights aggregates skill demand across all job postings against
// skill supply within the university's cohort. Skills that are supplied but
// never demanded do not appear in the gap table.
func (s *insightsServiceImpl) UniversityInsights(ctx context.Context, universityID string) (*dto.UniversityInsights, error) {
	university, err := s.findUniversity(ctx, universityID)
	if err != nil {
		return nil, err
	}

	students, err := s.store.Students(ctx)
	if err != nil {
		return nil, err
	}
	jobs, err := s.store.Jobs(ctx)
	if err != nil {
		return nil, err
	}

	cohort := make([]*models.Student, 0)
	for _, student := range students {
		if student.UniversityID != nil && *student.UniversityID == universityID {
			cohort = append(cohort, student)
		}
	}

	avgSkills := 0.0
	if len(cohort) > 0 {
		total := 0
		for _, student := range cohort {
			total += len(student.Skills)
		}
		avgSkills = Round2(float64(total) / float64(len(cohort)))
	}

	// Demand is counted across all postings, supply only within the cohort.
	// Skill keys are taken as written; the demand order is preserved so equal
	// gaps rank deterministically.
	demand := map[string]int{}
	demandOrder := []string{}
	for _, job := range jobs {
		for _, skill := range job.RequiredSkills {
			if _, ok := demand[skill]; !ok {
				demandOrder = append(demandOrder, skill)
			}
			demand[skill]++
		}
	}

	supply := map[string]int{}
	for _, student := range cohort {
		listed := map[string]bool{}
		for _, skill := range student.Skills {
			if !listed[skill] {
				listed[skill] = true
				supply[skill]++
			}
		}
	}

	gaps := make([]dto.SkillGap, 0, len(demandOrder))
	for _, skill := range demandOrder {
		gaps = append(gaps, dto.SkillGap{
			Skill:  skill,
			Demand: demand[skill],
			Supply: supply[skill],
			Gap:    demand[skill] - supply[skill],
		})
	}
	sort.SliceStable(gaps, func(a, b int) bool {
		return gaps[a].Gap > gaps[b].Gap
	})
	if len(gaps) > maxSkillGaps {
		gaps = gaps[:maxSkillGaps]
	}

	return &dto.UniversityInsights{
		University: university,
		Totals: dto.InsightTotals{
			Students: len(cohort),
			Jobs:     len(jobs),
		},
		AvgSkills:    avgSkills,
		TopSkillGaps: gaps,
	}, nil
}

func (s *insightsServiceImpl) findUniversity(ctx context.Context, id string) (*models.University, error) {
	universities, err := s.store.Universities(ctx)
	if err != nil {
		return nil, err
	}
	for _, university := range universities {
		if university.ID == id {
			return university, nil
		}
	}
	return nil, apperrors.ErrUniversityNotFound
}
