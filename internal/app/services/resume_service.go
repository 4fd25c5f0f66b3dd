package services

import (
	"context"
	"strings"
	"unicode"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/models/dto"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/store"
)

// maxSuggestionItems caps the skill lists attached to a suggestion.
const maxSuggestionItems = 10

// minResumeKeywords is the keyword coverage below which the keywords
// suggestion triggers.
const minResumeKeywords = 3

// ResumeService derives resume improvement suggestions from aggregate
// job-skill demand.
type ResumeService interface {
	OptimizeResume(ctx context.Context, studentID string) (*dto.ResumeAdvice, error)
}

type resumeServiceImpl struct {
	store store.Store
}

// NewResumeService creates a new resume service instance.
func NewResumeService(st store.Store) ResumeService {
	return &resumeServiceImpl{store: st}
}

// OptimizeResume evaluates the four suggestion rules independently, in rule
// order, appending each suggestion only when it triggers.
func (s *resumeServiceImpl) OptimizeResume(ctx context.Context, studentID string) (*dto.ResumeAdvice, error) {
	student, err := findStudent(ctx, s.store, studentID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.store.Jobs(ctx)
	if err != nil {
		return nil, err
	}

	// Every required skill across all postings, lowercased, deduplicated in
	// first-seen order.
	required := make([]string, 0)
	seen := make(map[string]bool)
	for _, job := range jobs {
		for _, skill := range job.RequiredSkills {
			lowered := strings.ToLower(skill)
			if !seen[lowered] {
				seen[lowered] = true
				required = append(required, lowered)
			}
		}
	}

	have := lowerSet(student.Skills)
	missing := make([]string, 0)
	keywordHits := 0
	for _, skill := range required {
		if !have[skill] {
			missing = append(missing, skill)
		}
		if TextContainsAll(student.ResumeText, []string{skill}) {
			keywordHits++
		}
	}

	suggestions := []dto.Suggestion{}

	if len(missing) > 0 {
		suggestions = append(suggestions, dto.Suggestion{
			Type:    "skills",
			Message: "Add missing industry skills",
			Items:   capItems(missing),
		})
	}

	if !TextContainsAll(student.ResumeText, []string{student.Name}) {
		suggestions = append(suggestions, dto.Suggestion{
			Type:    "branding",
			Message: "Include name and role summary",
			Items:   []string{},
		})
	}

	if !anyContainsDigit(student.Achievements) {
		suggestions = append(suggestions, dto.Suggestion{
			Type:    "quantify",
			Message: "Quantify achievements with metrics",
			Items:   []string{},
		})
	}

	if keywordHits < minResumeKeywords {
		suggestions = append(suggestions, dto.Suggestion{
			Type:    "keywords",
			Message: "Add role-specific keywords",
			Items:   capItems(required),
		})
	}

	return &dto.ResumeAdvice{Suggestions: suggestions}, nil
}

func capItems(items []string) []string {
	if len(items) > maxSuggestionItems {
		items = items[:maxSuggestionItems]
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}

func anyContainsDigit(items []string) bool {
	for _, item := range items {
		for _, r := range item {
			if unicode.IsDigit(r) {
				return true
			}
		}
	}
	return false
}
