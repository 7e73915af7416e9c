package board

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/jimezsa/jobboard/internal/models"
	"github.com/jimezsa/jobboard/internal/store"
)

var (
	ErrInvalidUserType    = errors.New("invalid user type")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyApplied     = errors.New("already applied")
)

// UserStore is the account persistence used by the services.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (int64, error)
	RoleForCredentials(ctx context.Context, username, password string) (models.Role, error)
	UserID(ctx context.Context, username string) (int64, error)
}

type JobStore interface {
	UserStore
	CreateJob(ctx context.Context, employerID int64, draft models.JobDraft) (int64, error)
	JobsByEmployer(ctx context.Context, employerID int64) iter.Seq2[models.Job, error]
	AllJobs(ctx context.Context) iter.Seq2[models.Job, error]
}

type ApplicationStore interface {
	UserStore
	CreateApplicationOnce(ctx context.Context, jobID, seekerID int64) (int64, error)
	ApplicationsBySeeker(ctx context.Context, seekerID int64) iter.Seq2[models.Application, error]
}

// resolveUserID maps a username to its id, turning a missing row into
// ErrUserNotFound.
func resolveUserID(ctx context.Context, users UserStore, username string) (int64, error) {
	id, err := users.UserID(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return 0, fmt.Errorf("%w: %s", ErrUserNotFound, username)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}
