package services

import (
	"context"
	"sort"
	"strings"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/models/dto"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/store"
)

// JobSearchQuery filters job search. Zero-valued fields are not applied.
type JobSearchQuery struct {
	Skills             []string
	Type               string
	Location           string
	MinExperienceYears *float64
}

// CandidateSearchQuery filters candidate search. Zero-valued fields are not
// applied.
type CandidateSearchQuery struct {
	Skills             []string
	UniversityID       string
	MinExperienceYears *float64
}

// SearchService ranks filtered jobs and candidates by skill similarity.
type SearchService interface {
	SearchJobs(ctx context.Context, q JobSearchQuery) ([]dto.JobMatch, error)
	SearchCandidates(ctx context.Context, q CandidateSearchQuery) ([]dto.CandidateMatch, error)
}

type searchServiceImpl struct {
	store store.Store
}

// NewSearchService creates a new search service instance.
func NewSearchService(st store.Store) SearchService {
	return &searchServiceImpl{store: st}
}

// SearchJobs filters jobs by requested skills, type, location and experience
// cap, then ranks by skill similarity descending. Without a skill filter
// every result scores 0 and the store order is preserved.
func (s *searchServiceImpl) SearchJobs(ctx context.Context, q JobSearchQuery) ([]dto.JobMatch, error) {
	jobs, err := s.store.Jobs(ctx)
	if err != nil {
		return nil, err
	}

	location := strings.ToLower(q.Location)

	results := []dto.JobMatch{}
	scores := []float64{}
	for _, job := range jobs {
		similarity := 0.0
		if len(q.Skills) > 0 {
			similarity = SetSimilarity(q.Skills, job.RequiredSkills)
			if similarity == 0 {
				continue
			}
		}
		if q.Type != "" && job.Type != q.Type {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(job.Location), location) {
			continue
		}
		if q.MinExperienceYears != nil && job.MinExperienceYears > *q.MinExperienceYears {
			continue
		}
		results = append(results, dto.JobMatch{Job: job, Score: Round3(similarity)})
		scores = append(scores, similarity)
	}

	sortByScore(results, scores)
	return results, nil
}

// SearchCandidates filters students by university, experience threshold and
// skill similarity, then ranks by similarity descending.
func (s *searchServiceImpl) SearchCandidates(ctx context.Context, q CandidateSearchQuery) ([]dto.CandidateMatch, error) {
	students, err := s.store.Students(ctx)
	if err != nil {
		return nil, err
	}

	results := []dto.CandidateMatch{}
	scores := []float64{}
	for _, student := range students {
		if q.UniversityID != "" {
			if student.UniversityID == nil || *student.UniversityID != q.UniversityID {
				continue
			}
		}
		if q.MinExperienceYears != nil && student.ExperienceYears < *q.MinExperienceYears {
			continue
		}
		similarity := 0.0
		if len(q.Skills) > 0 {
			similarity = SetSimilarity(q.Skills, student.Skills)
			if similarity == 0 {
				continue
			}
		}
		results = append(results, dto.CandidateMatch{Student: student, Score: Round3(similarity)})
		scores = append(scores, similarity)
	}

	sortByScore(results, scores)
	return results, nil
}

// sortByScore stable-sorts matches by descending unrounded score, keeping
// matches and scores in lockstep.
func sortByScore[T any](matches []T, scores []float64) {
	sort.Stable(&matchSorter[T]{matches: matches, scores: scores})
}

type matchSorter[T any] struct {
	matches []T
	scores  []float64
}

func (s *matchSorter[T]) Len() int           { return len(s.matches) }
func (s *matchSorter[T]) Less(i, j int) bool { return s.scores[i] > s.scores[j] }
func (s *matchSorter[T]) Swap(i, j int) {
	s.matches[i], s.matches[j] = s.matches[j], s.matches[i]
	s.scores[i], s.scores[j] = s.scores[j], s.scores[i]
}
