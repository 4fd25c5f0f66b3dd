package dto

// StudentPayload is the permissive input shape for creating a student.
// Missing fields default to empty values when the payload is normalized at
// the store boundary.
type StudentPayload struct {
	Name            LooseString `json:"name"`
	Email           LooseString `json:"email"`
	UniversityID    LooseString `json:"universityId"`
	Skills          StringList  `json:"skills"`
	Certifications  StringList  `json:"certifications"`
	Achievements    StringList  `json:"achievements"`
	ExperienceYears LooseNumber `json:"experienceYears"`
	ResumeText      LooseString `json:"resumeText"`
}

// JobPayload is the permissive input shape for creating a job posting.
type JobPayload struct {
	Title              LooseString `json:"title"`
	Company            LooseString `json:"company"`
	RequiredSkills     StringList  `json:"requiredSkills"`
	MinExperienceYears LooseNumber `json:"minExperienceYears"`
	Description        LooseString `json:"description"`
	Type               LooseString `json:"type"`
	Location           LooseString `json:"location"`
}
