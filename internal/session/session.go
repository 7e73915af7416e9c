package session

import (
	"errors"

	"github.com/jimezsa/jobboard/internal/models"
)

var (
	ErrNotLoggedIn = errors.New("not logged in")
	ErrWrongRole   = errors.New("operation not permitted for this role")
)

// Session is the identity currently using the board. The zero value is
// logged out.
type Session struct {
	Username string
	Role     models.Role
	LoggedIn bool
}

// Start replaces the session with a logged-in identity.
func (s *Session) Start(username string, role models.Role) {
	*s = Session{Username: username, Role: role, LoggedIn: true}
}

// Reset logs the session out.
func (s *Session) Reset() {
	*s = Session{}
}

// Require reports whether the session may run an operation limited to role.
func (s *Session) Require(role models.Role) error {
	if s == nil || !s.LoggedIn {
		return ErrNotLoggedIn
	}
	if s.Role != role {
		return ErrWrongRole
	}
	return nil
}
