package models

// Job type values. Callers may supply other values; these are the defaults
// used by the platform.
const (
	JobTypeJob        = "job"
	JobTypeInternship = "internship"
)

// Job defines a posted job or internship.
type Job struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Company            string   `json:"company"`
	RequiredSkills     []string `json:"requiredSkills"`
	MinExperienceYears float64  `json:"minExperienceYears"`
	Description        string   `json:"description"`
	Type               string   `json:"type"`
	Location           string   `json:"location"`
}
