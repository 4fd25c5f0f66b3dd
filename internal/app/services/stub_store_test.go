package services

import (
	"context"
	"strconv"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/models"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/models/dto"
)

// stubStore is an in-memory Store for service tests.
type stubStore struct {
	students     []*models.Student
	jobs         []*models.Job
	universities []*models.University
}

func (s *stubStore) AddUniversity(_ context.Context, name string) (*models.University, error) {
	u := &models.University{ID: strconv.Itoa(len(s.universities) + 1), Name: name}
	s.universities = append(s.universities, u)
	return u, nil
}

func (s *stubStore) AddStudent(_ context.Context, _ dto.StudentPayload) (*models.Student, error) {
	panic("not used in service tests")
}

func (s *stubStore) AddJob(_ context.Context, _ dto.JobPayload) (*models.Job, error) {
	panic("not used in service tests")
}

func (s *stubStore) Universities(_ context.Context) ([]*models.University, error) {
	return s.universities, nil
}

func (s *stubStore) Students(_ context.Context) ([]*models.Student, error) {
	return s.students, nil
}

func (s *stubStore) Jobs(_ context.Context) ([]*models.Job, error) {
	return s.jobs, nil
}

func strptr(s string) *string { return &s }
