// Package seed populates an empty store with demo data on first boot.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/models"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/models/dto"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/store"
)

// EnsureDemoData inserts one university, two students and two jobs into an
// empty store so the platform can be demoed immediately. Seeding is skipped
// when any data already exists, making it idempotent across boots.
func EnsureDemoData(ctx context.Context, st store.Store, lgr zerolog.Logger) error {
	students, err := st.Students(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing students: %w", err)
	}
	jobs, err := st.Jobs(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing jobs: %w", err)
	}
	universities, err := st.Universities(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing universities: %w", err)
	}

	if len(students) > 0 || len(jobs) > 0 || len(universities) > 0 {
		lgr.Debug().Msg("Store already has data, skipping demo seed")
		return nil
	}

	lgr.Info().Msg("Seeding demo data...")

	university, err := st.AddUniversity(ctx, "Tech University")
	if err != nil {
		return fmt.Errorf("failed to seed university: %w", err)
	}

	demoStudents := []dto.StudentPayload{
		{
			Name:            "Asha",
			Email:           "asha@example.com",
			UniversityID:    dto.LooseString(university.ID),
			Skills:          dto.StringList{"Java", "Spring", "SQL", "DSA"},
			Certifications:  dto.StringList{"Oracle SQL"},
			Achievements:    dto.StringList{"Smart India Hackathon finalist"},
			ExperienceYears: 0.5,
			ResumeText:      "Java developer with Spring and SQL, built APIs and solved DSA problems",
		},
		{
			Name:            "Rahul",
			Email:           "rahul@example.com",
			UniversityID:    dto.LooseString(university.ID),
			Skills:          dto.StringList{"Python", "Pandas", "ML", "NLP"},
			Certifications:  dto.StringList{"Coursera ML"},
			Achievements:    dto.StringList{"Published blog on sentiment analysis"},
			ExperienceYears: 1,
			ResumeText:      "Data science projects using Pandas, scikit-learn and NLP",
		},
	}
	for _, payload := range demoStudents {
		if _, err := st.AddStudent(ctx, payload); err != nil {
			return fmt.Errorf("failed to seed student %s: %w", payload.Name, err)
		}
	}

	demoJobs := []dto.JobPayload{
		{
			Title:              "Java Backend Intern",
			Company:            "Acme Corp",
			RequiredSkills:     dto.StringList{"Java", "Spring", "SQL"},
			MinExperienceYears: 0,
			Description:        "Build REST APIs and work with relational databases",
			Type:               models.JobTypeInternship,
			Location:           "Remote",
		},
		{
			Title:              "Data Analyst",
			Company:            "InsightX",
			RequiredSkills:     dto.StringList{"Python", "Pandas", "SQL"},
			MinExperienceYears: 0,
			Description:        "Analyze datasets and build dashboards",
			Type:               models.JobTypeJob,
			Location:           "Bangalore",
		},
	}
	for _, payload := range demoJobs {
		if _, err := st.AddJob(ctx, payload); err != nil {
			return fmt.Errorf("failed to seed job %s: %w", payload.Title, err)
		}
	}

	lgr.Info().Msg("Demo data seeded")
	return nil
}
