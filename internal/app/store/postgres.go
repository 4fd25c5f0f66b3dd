package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/models"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/models/dto"
	"github.com/tanmayaurl/Skillsculpt2/internal/pkg/apperrors"
)

// PostgresStore is the relational backend. Each entity type maps to one
// table; ids are database-assigned serials surfaced to callers as strings,
// and array-valued fields are stored as JSONB.
type PostgresStore struct {
	db     *pgxpool.Pool
	sb     squirrel.StatementBuilderType
	logger zerolog.Logger
}

// NewPostgresStore creates a PostgresStore on the given pool.
func NewPostgresStore(db *pgxpool.Pool, logger zerolog.Logger) *PostgresStore {
	return &PostgresStore{
		db:     db,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		logger: logger,
	}
}

// AddUniversity inserts a university row.
func (s *PostgresStore) AddUniversity(ctx context.Context, name string) (*models.University, error) {
	sql, args, err := s.sb.Insert("universities").
		Columns("name").
		Values(name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert university query: %w", err)
	}

	var id int64
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		s.logger.Error().Err(err).Msg("Error inserting university")
		return nil, backendErr("error inserting university", err)
	}

	return &models.University{ID: strconv.FormatInt(id, 10), Name: name}, nil
}

// AddStudent normalizes the payload and inserts a student row.
func (s *PostgresStore) AddStudent(ctx context.Context, payload dto.StudentPayload) (*models.Student, error) {
	student := newStudent("", payload)

	var universityID *int64
	if student.UniversityID != nil {
		if n, err := strconv.ParseInt(*student.UniversityID, 10, 64); err == nil {
			universityID = &n
		}
	}

	sql, args, err := s.sb.Insert("students").
		Columns("name", "email", "university_id", "skills", "certifications", "achievements", "experience_years", "resume_text").
		Values(student.Name, student.Email, universityID,
			mustJSON(student.Skills), mustJSON(student.Certifications), mustJSON(student.Achievements),
			student.ExperienceYears, student.ResumeText).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert student query: %w", err)
	}

	var id int64
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		s.logger.Error().Err(err).Msg("Error inserting student")
		return nil, backendErr("error inserting student", err)
	}

	student.ID = strconv.FormatInt(id, 10)
	return student, nil
}

// AddJob normalizes the payload and inserts a job row.
func (s *PostgresStore) AddJob(ctx context.Context, payload dto.JobPayload) (*models.Job, error) {
	job := newJob("", payload)

	sql, args, err := s.sb.Insert("jobs").
		Columns("title", "company", "required_skills", "min_experience_years", "description", "type", "location").
		Values(job.Title, job.Company, mustJSON(job.RequiredSkills),
			job.MinExperienceYears, job.Description, job.Type, job.Location).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert job query: %w", err)
	}

	var id int64
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		s.logger.Error().Err(err).Msg("Error inserting job")
		return nil, backendErr("error inserting job", err)
	}

	job.ID = strconv.FormatInt(id, 10)
	return job, nil
}

// Universities retrieves all universities.
func (s *PostgresStore) Universities(ctx context.Context) ([]*models.University, error) {
	sql, args, err := s.sb.Select("id", "name").
		From("universities").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select universities query: %w", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, backendErr("error querying universities", err)
	}
	defer rows.Close()

	universities := []*models.University{}
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, backendErr("error scanning university row", err)
		}
		universities = append(universities, &models.University{ID: strconv.FormatInt(id, 10), Name: name})
	}
	if err := rows.Err(); err != nil {
		return nil, backendErr("error reading university rows", err)
	}

	return universities, nil
}

// Students retrieves all students.
func (s *PostgresStore) Students(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := s.sb.Select("id", "name", "email", "university_id", "skills", "certifications", "achievements", "experience_years", "resume_text").
		From("students").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select students query: %w", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, backendErr("error querying students", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		var (
			id                      int64
			name                    string
			email                   *string
			universityID            *int64
			skills, certs, achieves []byte
			experienceYears         *float64
			resumeText              *string
		)
		if err := rows.Scan(&id, &name, &email, &universityID, &skills, &certs, &achieves, &experienceYears, &resumeText); err != nil {
			return nil, backendErr("error scanning student row", err)
		}

		student := &models.Student{
			ID:              strconv.FormatInt(id, 10),
			Name:            name,
			Email:           stringOrEmpty(email),
			Skills:          decodeTextArray(skills),
			Certifications:  decodeTextArray(certs),
			Achievements:    decodeTextArray(achieves),
			ExperienceYears: floatOrZero(experienceYears),
			ResumeText:      stringOrEmpty(resumeText),
		}
		if universityID != nil {
			uid := strconv.FormatInt(*universityID, 10)
			student.UniversityID = &uid
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, backendErr("error reading student rows", err)
	}

	return students, nil
}

// Jobs retrieves all jobs.
func (s *PostgresStore) Jobs(ctx context.Context) ([]*models.Job, error) {
	sql, args, err := s.sb.Select("id", "title", "company", "required_skills", "min_experience_years", "description", "type", "location").
		From("jobs").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select jobs query: %w", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, backendErr("error querying jobs", err)
	}
	defer rows.Close()

	jobs := []*models.Job{}
	for rows.Next() {
		var (
			id                 int64
			title              string
			company            *string
			requiredSkills     []byte
			minExperienceYears *float64
			description        *string
			jobType            *string
			location           *string
		)
		if err := rows.Scan(&id, &title, &company, &requiredSkills, &minExperienceYears, &description, &jobType, &location); err != nil {
			return nil, backendErr("error scanning job row", err)
		}

		job := &models.Job{
			ID:                 strconv.FormatInt(id, 10),
			Title:              title,
			Company:            stringOrEmpty(company),
			RequiredSkills:     decodeTextArray(requiredSkills),
			MinExperienceYears: floatOrZero(minExperienceYears),
			Description:        stringOrEmpty(description),
			Type:               stringOrEmpty(jobType),
			Location:           stringOrEmpty(location),
		}
		if job.Type == "" {
			job.Type = models.JobTypeJob
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, backendErr("error reading job rows", err)
	}

	return jobs, nil
}

// backendErr ties a connection or query failure to the backend failure
// sentinel so the HTTP layer can map it without inspecting driver errors.
func backendErr(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, apperrors.ErrBackendFailure, err)
}

// mustJSON encodes a string slice for a JSONB column. Encoding a []string
// cannot fail.
func mustJSON(items []string) []byte {
	data, _ := json.Marshal(items)
	return data
}

// decodeTextArray decodes a JSONB column back to a string slice, tolerating
// both decoded arrays and raw text; anything unparseable becomes empty.
func decodeTextArray(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return []string{}
	}
	return items
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
