package store

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/models"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/models/dto"
)

// snapshot is the on-disk shape of the embedded store: the three entity
// sequences plus their next-id counters, rewritten wholesale on every
// mutation. Fields are raw so a partially malformed document degrades to
// empty sequences instead of failing the load.
type snapshot struct {
	Students        json.RawMessage `json:"students"`
	Jobs            json.RawMessage `json:"jobs"`
	Universities    json.RawMessage `json:"universities"`
	StudentIDSeq    dto.LooseNumber `json:"studentIdSeq"`
	JobIDSeq        dto.LooseNumber `json:"jobIdSeq"`
	UniversityIDSeq dto.LooseNumber `json:"universityIdSeq"`
}

// FileStore is the embedded backend: append-only slices in process memory,
// serialized to a single JSON snapshot file after every successful add.
// Mutations and reads are serialized by a mutex since the HTTP layer serves
// requests on multiple goroutines.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger zerolog.Logger

	students     []*models.Student
	jobs         []*models.Job
	universities []*models.University

	studentSeq    int64
	jobSeq        int64
	universitySeq int64
}

// NewFileStore creates a FileStore backed by the snapshot file at path. A
// missing or unreadable snapshot yields an empty store; load failures are
// logged and swallowed.
func NewFileStore(path string, logger zerolog.Logger) *FileStore {
	s := &FileStore{
		path:         path,
		logger:       logger,
		students:     []*models.Student{},
		jobs:         []*models.Job{},
		universities: []*models.University{},
	}
	s.load()
	return s
}

func (s *FileStore) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("Snapshot unreadable, starting with empty store")
		}
		s.resetCounters()
		return
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("Snapshot malformed, starting with empty store")
		s.resetCounters()
		return
	}

	s.students = decodeEntities[models.Student](snap.Students)
	s.jobs = decodeEntities[models.Job](snap.Jobs)
	s.universities = decodeEntities[models.University](snap.Universities)

	s.studentSeq = counterOr(snap.StudentIDSeq, len(s.students))
	s.jobSeq = counterOr(snap.JobIDSeq, len(s.jobs))
	s.universitySeq = counterOr(snap.UniversityIDSeq, len(s.universities))
}

func (s *FileStore) resetCounters() {
	s.studentSeq = 1
	s.jobSeq = 1
	s.universitySeq = 1
}

// decodeEntities coerces a raw snapshot field to an entity slice; anything
// that is not an array of entities becomes an empty slice.
func decodeEntities[T any](raw json.RawMessage) []*T {
	var entities []*T
	if len(raw) == 0 || json.Unmarshal(raw, &entities) != nil || entities == nil {
		return []*T{}
	}
	return entities
}

// counterOr returns the persisted counter, or length+1 when the counter is
// absent from the snapshot.
func counterOr(persisted dto.LooseNumber, length int) int64 {
	if persisted > 0 {
		return int64(persisted)
	}
	return int64(length) + 1
}

// save rewrites the snapshot file. Write failures are logged and swallowed:
// the store keeps serving from memory rather than failing the request.
// Callers must hold the mutex.
func (s *FileStore) save() {
	snap := struct {
		Students        []*models.Student    `json:"students"`
		Jobs            []*models.Job        `json:"jobs"`
		Universities    []*models.University `json:"universities"`
		StudentIDSeq    int64                `json:"studentIdSeq"`
		JobIDSeq        int64                `json:"jobIdSeq"`
		UniversityIDSeq int64                `json:"universityIdSeq"`
	}{
		Students:        s.students,
		Jobs:            s.jobs,
		Universities:    s.universities,
		StudentIDSeq:    s.studentSeq,
		JobIDSeq:        s.jobSeq,
		UniversityIDSeq: s.universitySeq,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to serialize store snapshot")
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg("Failed to write store snapshot")
	}
}

// AddUniversity appends a university and rewrites the snapshot.
func (s *FileStore) AddUniversity(_ context.Context, name string) (*models.University, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := &models.University{
		ID:   strconv.FormatInt(s.universitySeq, 10),
		Name: name,
	}
	s.universitySeq++
	s.universities = append(s.universities, u)
	s.save()
	return u, nil
}

// AddStudent normalizes the payload, appends the student and rewrites the
// snapshot.
func (s *FileStore) AddStudent(_ context.Context, payload dto.StudentPayload) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student := newStudent(strconv.FormatInt(s.studentSeq, 10), payload)
	s.studentSeq++
	s.students = append(s.students, student)
	s.save()
	return student, nil
}

// AddJob normalizes the payload, appends the job and rewrites the snapshot.
func (s *FileStore) AddJob(_ context.Context, payload dto.JobPayload) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := newJob(strconv.FormatInt(s.jobSeq, 10), payload)
	s.jobSeq++
	s.jobs = append(s.jobs, job)
	s.save()
	return job, nil
}

// Universities returns all universities in insertion order.
func (s *FileStore) Universities(_ context.Context) ([]*models.University, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.University, len(s.universities))
	copy(out, s.universities)
	return out, nil
}

// Students returns all students in insertion order.
func (s *FileStore) Students(_ context.Context) ([]*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Student, len(s.students))
	copy(out, s.students)
	return out, nil
}

// Jobs returns all jobs in insertion order.
func (s *FileStore) Jobs(_ context.Context) ([]*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Job, len(s.jobs))
	copy(out, s.jobs)
	return out, nil
}
