package board

import (
	"context"
	"errors"
	"iter"

	"github.com/jimezsa/jobboard/internal/models"
	"github.com/jimezsa/jobboard/internal/session"
	"github.com/jimezsa/jobboard/internal/store"
	"github.com/rs/zerolog"
)

type Applications struct {
	store   ApplicationStore
	session *session.Session
	logger  zerolog.Logger
}

func NewApplications(apps ApplicationStore, sess *session.Session, logger zerolog.Logger) *Applications {
	return &Applications{store: apps, session: sess, logger: logger}
}

// Apply records an application by the logged-in job seeker. A second
// application for the same job returns ErrAlreadyApplied.
func (a *Applications) Apply(ctx context.Context, jobID int64) (int64, error) {
	if err := a.session.Require(models.RoleJobSeeker); err != nil {
		return 0, err
	}
	seekerID, err := resolveUserID(ctx, a.store, a.session.Username)
	if err != nil {
		return 0, err
	}

	id, err := a.store.CreateApplicationOnce(ctx, jobID, seekerID)
	if errors.Is(err, store.ErrDuplicate) {
		return 0, ErrAlreadyApplied
	}
	if err != nil {
		return 0, err
	}
	a.logger.Debug().Int64("application_id", id).Int64("job_id", jobID).Int64("job_seeker_id", seekerID).Msg("application submitted")
	return id, nil
}

// ListMine yields the logged-in job seeker's applications.
func (a *Applications) ListMine(ctx context.Context) (iter.Seq2[models.Application, error], error) {
	if err := a.session.Require(models.RoleJobSeeker); err != nil {
		return nil, err
	}
	seekerID, err := resolveUserID(ctx, a.store, a.session.Username)
	if err != nil {
		return nil, err
	}
	return a.store.ApplicationsBySeeker(ctx, seekerID), nil
}
