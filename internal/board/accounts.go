package board

import (
	"context"
	"errors"

	"github.com/jimezsa/jobboard/internal/models"
	"github.com/jimezsa/jobboard/internal/session"
	"github.com/jimezsa/jobboard/internal/store"
	"github.com/rs/zerolog"
)

// Accounts registers users and manages the login session.
type Accounts struct {
	store   UserStore
	session *session.Session
	logger  zerolog.Logger
}

func NewAccounts(users UserStore, sess *session.Session, logger zerolog.Logger) *Accounts {
	return &Accounts{store: users, session: sess, logger: logger}
}

// Register creates an account. choice 1 is a job seeker, 2 an employer.
func (a *Accounts) Register(ctx context.Context, username, email, password string, choice int) (int64, error) {
	role, ok := models.RoleFromChoice(choice)
	if !ok {
		return 0, ErrInvalidUserType
	}

	id, err := a.store.CreateUser(ctx, models.User{
		Username: username,
		Password: password,
		Email:    email,
		Role:     role,
	})
	if err != nil {
		return 0, err
	}
	a.logger.Debug().Int64("user_id", id).Str("username", username).Str("user_type", string(role)).Msg("user registered")
	return id, nil
}

// Login starts a session for the account matching username and password.
// The session is left untouched when nothing matches.
func (a *Accounts) Login(ctx context.Context, username, password string) error {
	role, err := a.store.RoleForCredentials(ctx, username, password)
	if errors.Is(err, store.ErrNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}
	a.session.Start(username, role)
	a.logger.Debug().Str("username", username).Str("user_type", string(role)).Msg("logged in")
	return nil
}

func (a *Accounts) Logout() {
	a.session.Reset()
}

// LookupUserID returns the id for username, or ErrUserNotFound.
func (a *Accounts) LookupUserID(ctx context.Context, username string) (int64, error) {
	return resolveUserID(ctx, a.store, username)
}
