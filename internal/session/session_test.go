package session

import (
	"errors"
	"testing"

	"github.com/jimezsa/jobboard/internal/models"
)

func TestRequire(t *testing.T) {
	cases := []struct {
		name    string
		session *Session
		role    models.Role
		want    error
	}{
		{"nil session", nil, models.RoleEmployer, ErrNotLoggedIn},
		{"logged out", &Session{}, models.RoleEmployer, ErrNotLoggedIn},
		{"wrong role", &Session{Username: "bob", Role: models.RoleJobSeeker, LoggedIn: true}, models.RoleEmployer, ErrWrongRole},
		{"allowed", &Session{Username: "alice", Role: models.RoleEmployer, LoggedIn: true}, models.RoleEmployer, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.session.Require(tc.role)
			if !errors.Is(got, tc.want) {
				t.Fatalf("Require(%q) = %v, want %v", tc.role, got, tc.want)
			}
		})
	}
}

func TestStartAndReset(t *testing.T) {
	var s Session
	s.Start("alice", models.RoleEmployer)
	if !s.LoggedIn || s.Username != "alice" || s.Role != models.RoleEmployer {
		t.Fatalf("unexpected session after Start: %+v", s)
	}

	s.Start("bob", models.RoleJobSeeker)
	if s.Username != "bob" || s.Role != models.RoleJobSeeker {
		t.Fatalf("Start should overwrite the previous identity: %+v", s)
	}

	s.Reset()
	if s != (Session{}) {
		t.Fatalf("Reset() left %+v", s)
	}
}
