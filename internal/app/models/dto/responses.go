package dto

import "github.com/tanmayaurl/Skillsculpt2/internal/app/models"

// LoginRequest is the POST /auth/login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the minted token and the role it encodes.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// JobMatch pairs a job with its ranking score.
type JobMatch struct {
	Job   *models.Job `json:"job"`
	Score float64     `json:"score"`
}

// CandidateMatch pairs a student with its ranking score.
type CandidateMatch struct {
	Student *models.Student `json:"student"`
	Score   float64         `json:"score"`
}

// Suggestion is one resume improvement recommendation.
type Suggestion struct {
	Type    string   `json:"type"`
	Message string   `json:"message"`
	Items   []string `json:"items"`
}

// ResumeAdvice is the resume optimizer output.
type ResumeAdvice struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// SkillGap reports demand against supply for one skill.
type SkillGap struct {
	Skill  string `json:"skill"`
	Demand int    `json:"demand"`
	Supply int    `json:"supply"`
	Gap    int    `json:"gap"`
}

// InsightTotals are cohort and market sizes for a university dashboard.
type InsightTotals struct {
	Students int `json:"students"`
	Jobs     int `json:"jobs"`
}

// UniversityInsights is the dashboard payload for one university.
type UniversityInsights struct {
	University   *models.University `json:"university"`
	Totals       InsightTotals      `json:"totals"`
	AvgSkills    float64            `json:"avgSkills"`
	TopSkillGaps []SkillGap         `json:"topSkillGaps"`
}
