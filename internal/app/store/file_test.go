package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/models"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/models/dto"
)

func snapshotPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "data.json")
}

func TestFileStoreAddAndList(t *testing.T) {
	st := NewFileStore(snapshotPath(t), zerolog.Nop())
	ctx := context.Background()

	u, err := st.AddUniversity(ctx, "Tech University")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)

	student, err := st.AddStudent(ctx, dto.StudentPayload{
		Name:         "Asha",
		UniversityID: dto.LooseString(u.ID),
		Skills:       dto.StringList{"Java", "SQL"},
	})
	require.NoError(t, err)
	assert.Equal(t, "1", student.ID)
	require.NotNil(t, student.UniversityID)
	assert.Equal(t, "1", *student.UniversityID)
	assert.Equal(t, []string{}, student.Certifications)

	job, err := st.AddJob(ctx, dto.JobPayload{Title: "Backend Intern"})
	require.NoError(t, err)
	assert.Equal(t, "1", job.ID)
	assert.Equal(t, models.JobTypeJob, job.Type)
	assert.Equal(t, []string{}, job.RequiredSkills)

	students, err := st.Students(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Asha", students[0].Name)
}

func TestFileStoreSequentialIDs(t *testing.T) {
	st := NewFileStore(snapshotPath(t), zerolog.Nop())
	ctx := context.Background()

	for _, want := range []string{"1", "2", "3"} {
		job, err := st.AddJob(ctx, dto.JobPayload{Title: "Role " + dto.LooseString(want)})
		require.NoError(t, err)
		assert.Equal(t, want, job.ID)
	}
}

func TestFileStoreReloadsSnapshot(t *testing.T) {
	path := snapshotPath(t)
	ctx := context.Background()

	first := NewFileStore(path, zerolog.Nop())
	_, err := first.AddUniversity(ctx, "Tech University")
	require.NoError(t, err)
	_, err = first.AddStudent(ctx, dto.StudentPayload{Name: "Asha", Skills: dto.StringList{"Java"}})
	require.NoError(t, err)
	_, err = first.AddJob(ctx, dto.JobPayload{Title: "Backend Intern", Type: "internship"})
	require.NoError(t, err)

	second := NewFileStore(path, zerolog.Nop())

	students, err := second.Students(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Asha", students[0].Name)
	assert.Equal(t, []string{"Java"}, students[0].Skills)

	jobs, err := second.Jobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "internship", jobs[0].Type)

	// Counters continue where the snapshot left off.
	job, err := second.AddJob(ctx, dto.JobPayload{Title: "Next"})
	require.NoError(t, err)
	assert.Equal(t, "2", job.ID)
}

func TestFileStoreMissingSnapshotStartsEmpty(t *testing.T) {
	st := NewFileStore(snapshotPath(t), zerolog.Nop())

	students, err := st.Students(context.Background())
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestFileStoreMalformedSnapshotStartsEmpty(t *testing.T) {
	path := snapshotPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	st := NewFileStore(path, zerolog.Nop())
	ctx := context.Background()

	jobs, err := st.Jobs(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	job, err := st.AddJob(ctx, dto.JobPayload{Title: "Fresh"})
	require.NoError(t, err)
	assert.Equal(t, "1", job.ID)
}

func TestFileStorePartiallyMalformedSnapshot(t *testing.T) {
	path := snapshotPath(t)
	doc := `{
		"students": "oops",
		"jobs": [{"id":"1","title":"Kept","requiredSkills":["Go"],"type":"job"}],
		"jobIdSeq": "nonsense"
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	st := NewFileStore(path, zerolog.Nop())
	ctx := context.Background()

	students, err := st.Students(ctx)
	require.NoError(t, err)
	assert.Empty(t, students)

	jobs, err := st.Jobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Kept", jobs[0].Title)

	// A missing counter falls back to length+1.
	job, err := st.AddJob(ctx, dto.JobPayload{Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, "2", job.ID)
}

func TestFileStoreListReturnsCopy(t *testing.T) {
	st := NewFileStore(snapshotPath(t), zerolog.Nop())
	ctx := context.Background()

	_, err := st.AddJob(ctx, dto.JobPayload{Title: "One"})
	require.NoError(t, err)

	jobs, err := st.Jobs(ctx)
	require.NoError(t, err)
	jobs[0] = nil

	again, err := st.Jobs(ctx)
	require.NoError(t, err)
	require.Len(t, again, 1)
	require.NotNil(t, again[0])
}
