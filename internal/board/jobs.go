package board

import (
	"context"
	"iter"

	"github.com/jimezsa/jobboard/internal/models"
	"github.com/jimezsa/jobboard/internal/session"
	"github.com/rs/zerolog"
)

type Jobs struct {
	store   JobStore
	session *session.Session
	logger  zerolog.Logger
}

func NewJobs(jobs JobStore, sess *session.Session, logger zerolog.Logger) *Jobs {
	return &Jobs{store: jobs, session: sess, logger: logger}
}

// Post stores a job on behalf of the logged-in employer.
func (j *Jobs) Post(ctx context.Context, draft models.JobDraft) (int64, error) {
	if err := j.session.Require(models.RoleEmployer); err != nil {
		return 0, err
	}
	employerID, err := resolveUserID(ctx, j.store, j.session.Username)
	if err != nil {
		return 0, err
	}

	id, err := j.store.CreateJob(ctx, employerID, draft)
	if err != nil {
		return 0, err
	}
	j.logger.Debug().Int64("job_id", id).Int64("employer_id", employerID).Str("title", draft.Title).Msg("job posted")
	return id, nil
}

// ListMine yields the jobs posted by the logged-in employer.
func (j *Jobs) ListMine(ctx context.Context) (iter.Seq2[models.Job, error], error) {
	if err := j.session.Require(models.RoleEmployer); err != nil {
		return nil, err
	}
	employerID, err := resolveUserID(ctx, j.store, j.session.Username)
	if err != nil {
		return nil, err
	}
	return j.store.JobsByEmployer(ctx, employerID), nil
}

// ListAll yields every job. Only job seekers browse the board.
func (j *Jobs) ListAll(ctx context.Context) (iter.Seq2[models.Job, error], error) {
	if err := j.session.Require(models.RoleJobSeeker); err != nil {
		return nil, err
	}
	return j.store.AllJobs(ctx), nil
}

// ListByEmployer yields the jobs of a named employer without a session. It
// backs offline exports of the local database.
func (j *Jobs) ListByEmployer(ctx context.Context, username string) (iter.Seq2[models.Job, error], error) {
	employerID, err := resolveUserID(ctx, j.store, username)
	if err != nil {
		return nil, err
	}
	return j.store.JobsByEmployer(ctx, employerID), nil
}

// Catalog yields every job without a session, for exports.
func (j *Jobs) Catalog(ctx context.Context) iter.Seq2[models.Job, error] {
	return j.store.AllJobs(ctx)
}
