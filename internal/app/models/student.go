package models

// Student defines the student model. UniversityID is a weak reference to a
// University; it is null when the student is not attached to one.
type Student struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	UniversityID    *string  `json:"universityId"`
	Skills          []string `json:"skills"`
	Certifications  []string `json:"certifications"`
	Achievements    []string `json:"achievements"`
	ExperienceYears float64  `json:"experienceYears"`
	ResumeText      string   `json:"resumeText"`
}
