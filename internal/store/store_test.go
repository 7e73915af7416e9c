package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jimezsa/jobboard/internal/models"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "board.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	for _, res := range st.EnsureSchema(context.Background()) {
		require.NoError(t, res.Err, "table %s", res.Table)
	}
	return st
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	st := openTestStore(t)

	results := st.EnsureSchema(context.Background())
	require.Len(t, results, 3)
	require.Equal(t, TableUsers, results[0].Table)
	require.Equal(t, TableJobs, results[1].Table)
	require.Equal(t, TableApplications, results[2].Table)
	for _, res := range results {
		require.NoError(t, res.Err)
	}
}

func TestEnsureSchemaContinuesPastFailingTable(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "board.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	// An index named jobs blocks the jobs table.
	_, err = st.DB.Exec(`CREATE TABLE x (a TEXT)`)
	require.NoError(t, err)
	_, err = st.DB.Exec(`CREATE INDEX jobs ON x(a)`)
	require.NoError(t, err)

	results := st.EnsureSchema(context.Background())
	require.Len(t, results, 3)
	require.Equal(t, TableUsers, results[0].Table)
	require.NoError(t, results[0].Err)
	require.Equal(t, TableJobs, results[1].Table)
	require.Error(t, results[1].Err)
	require.Contains(t, results[1].Err.Error(), "jobs")
	require.Equal(t, TableApplications, results[2].Table)
	require.NoError(t, results[2].Err)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	user := models.User{Username: "alice", Password: "pw1", Email: "a@example.com", Role: models.RoleEmployer}
	_, err := st.CreateUser(ctx, user)
	require.NoError(t, err)

	_, err = st.CreateUser(ctx, user)
	require.ErrorIs(t, err, ErrDuplicate)
	require.Contains(t, err.Error(), "UNIQUE")

	count, err := st.CountUsers(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	st := openTestStore(t)

	_, err := st.CreateUser(context.Background(), models.User{Username: "eve", Password: "x", Email: "e", Role: "admin"})
	require.Error(t, err)
}

func TestRoleForCredentials(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	_, err := st.CreateUser(ctx, models.User{Username: "bob", Password: "pw2", Email: "b@example.com", Role: models.RoleJobSeeker})
	require.NoError(t, err)

	role, err := st.RoleForCredentials(ctx, "bob", "pw2")
	require.NoError(t, err)
	require.Equal(t, models.RoleJobSeeker, role)

	_, err = st.RoleForCredentials(ctx, "bob", "wrong")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = st.RoleForCredentials(ctx, "nobody", "pw2")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUserIDNotFound(t *testing.T) {
	st := openTestStore(t)

	_, err := st.UserID(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestJobsByEmployerFiltersOwner(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	alice, err := st.CreateUser(ctx, models.User{Username: "alice", Password: "pw", Email: "a", Role: models.RoleEmployer})
	require.NoError(t, err)
	carol, err := st.CreateUser(ctx, models.User{Username: "carol", Password: "pw", Email: "c", Role: models.RoleEmployer})
	require.NoError(t, err)

	_, err = st.CreateJob(ctx, alice, models.JobDraft{Title: "Dev", Location: "Berlin"})
	require.NoError(t, err)
	_, err = st.CreateJob(ctx, carol, models.JobDraft{Title: "Ops"})
	require.NoError(t, err)
	_, err = st.CreateJob(ctx, alice, models.JobDraft{Title: "QA"})
	require.NoError(t, err)

	var titles []string
	for job, err := range st.JobsByEmployer(ctx, alice) {
		require.NoError(t, err)
		require.Equal(t, alice, job.EmployerID)
		titles = append(titles, job.Title)
	}
	require.Equal(t, []string{"Dev", "QA"}, titles)

	total := 0
	for _, err := range st.AllJobs(ctx) {
		require.NoError(t, err)
		total++
	}
	require.Equal(t, 3, total)
}

func TestCreateJobRequiresExistingEmployer(t *testing.T) {
	st := openTestStore(t)

	_, err := st.CreateJob(context.Background(), 42, models.JobDraft{Title: "Orphan"})
	require.Error(t, err)
}

func TestCreateApplicationOnce(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	employer, err := st.CreateUser(ctx, models.User{Username: "alice", Password: "pw", Email: "a", Role: models.RoleEmployer})
	require.NoError(t, err)
	seeker, err := st.CreateUser(ctx, models.User{Username: "bob", Password: "pw", Email: "b", Role: models.RoleJobSeeker})
	require.NoError(t, err)
	jobID, err := st.CreateJob(ctx, employer, models.JobDraft{Title: "Dev"})
	require.NoError(t, err)

	_, err = st.CreateApplicationOnce(ctx, jobID, seeker)
	require.NoError(t, err)

	_, err = st.CreateApplicationOnce(ctx, jobID, seeker)
	require.ErrorIs(t, err, ErrDuplicate)

	count, err := st.CountApplications(ctx, jobID, seeker)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	var apps []models.Application
	for app, err := range st.ApplicationsBySeeker(ctx, seeker) {
		require.NoError(t, err)
		apps = append(apps, app)
	}
	require.Len(t, apps, 1)
	require.Equal(t, jobID, apps[0].JobID)
	require.Equal(t, models.StatusPending, apps[0].Status)
	require.False(t, apps[0].AppliedAt.IsZero())
}

func TestIteratorStopsEarly(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	employer, err := st.CreateUser(ctx, models.User{Username: "alice", Password: "pw", Email: "a", Role: models.RoleEmployer})
	require.NoError(t, err)
	for _, title := range []string{"A", "B", "C"} {
		_, err := st.CreateJob(ctx, employer, models.JobDraft{Title: title})
		require.NoError(t, err)
	}

	for job, err := range st.AllJobs(ctx) {
		require.NoError(t, err)
		require.Equal(t, "A", job.Title)
		break
	}

	// The connection must be released after an early break.
	_, err = st.UserID(ctx, "alice")
	require.NoError(t, err)
}

func TestNullJobColumnsReadAsEmpty(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	employerID, err := st.CreateUser(ctx, models.User{Username: "acme", Password: "pw", Email: "hr@acme.test", Role: models.RoleEmployer})
	require.NoError(t, err)
	_, err = st.DB.ExecContext(ctx, `INSERT INTO jobs (employer_id, title) VALUES (?, 'Bare')`, employerID)
	require.NoError(t, err)

	var jobs []models.Job
	for job, err := range st.AllJobs(ctx) {
		require.NoError(t, err)
		jobs = append(jobs, job)
	}
	require.Len(t, jobs, 1)
	require.Equal(t, "Bare", jobs[0].Title)
	require.Empty(t, jobs[0].Description)
	require.Empty(t, jobs[0].Requirements)
	require.Empty(t, jobs[0].Location)
	require.Empty(t, jobs[0].SalaryRange)
	require.Empty(t, jobs[0].ContactNumber)
}
